package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RegistrationService manages the participation ledger. Both registration and
// unregistration are only allowed while the contest is upcoming.
type RegistrationService interface {
	Register(userID, contestID uint) error
	Unregister(userID, contestID uint) error
}

type registrationService struct {
	contestRepo       repository.ContestRepository
	participationRepo repository.ParticipationRepository
}

func NewRegistrationService(contestRepo repository.ContestRepository, participationRepo repository.ParticipationRepository) RegistrationService {
	return &registrationService{contestRepo: contestRepo, participationRepo: participationRepo}
}

func (s *registrationService) Register(userID, contestID uint) error {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return err
	}
	if contest.StatusAt(time.Now()) != model.ContestUpcoming {
		return fmt.Errorf("%w: cannot register for a contest that has already started", common.ErrForbidden)
	}

	if _, err := s.participationRepo.FindByUserAndContest(userID, contestID); err == nil {
		return fmt.Errorf("%w: already registered for this contest", common.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	participation := model.Participation{UserID: userID, ContestID: contestID}
	if err := s.participationRepo.Create(&participation); err != nil {
		// The unique index backs up the existence check under concurrency.
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("%w: already registered for this contest", common.ErrConflict)
		}
		log.Error().Err(err).Uint("contest_id", contestID).Uint("user_id", userID).Msg("Failed to create participation")
		return fmt.Errorf("%w: registration failed", common.ErrInternalServer)
	}
	return nil
}

func (s *registrationService) Unregister(userID, contestID uint) error {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return err
	}

	participation, err := s.participationRepo.FindByUserAndContest(userID, contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: not registered for this contest", common.ErrNotFound)
		}
		return err
	}

	if contest.StatusAt(time.Now()) != model.ContestUpcoming {
		return fmt.Errorf("%w: cannot unregister after the contest has started", common.ErrForbidden)
	}
	return s.participationRepo.Delete(participation.ID)
}
