package service

import (
	"errors"
	"fmt"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	Signup(req dto.SignupRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(refreshToken string) (*dto.TokenPairResponse, error)
	Profile(userID uint) (*dto.UserResponse, error)
	Delete(userID uint, password string) error
}

type accountService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAccountService(userRepo repository.UserRepository, tokens TokenService) AccountService {
	return &accountService{userRepo: userRepo, tokens: tokens}
}

func (s *accountService) Signup(req dto.SignupRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(&user); err != nil {
		if common.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email already exists", common.ErrConflict)
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, fmt.Errorf("%w: could not create account", common.ErrInternalServer)
	}

	return userToResponse(&user), nil
}

func (s *accountService) Login(req dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
	}

	access, refresh, err := s.tokens.GenerateTokens(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate tokens")
		return nil, fmt.Errorf("%w: could not log in", common.ErrInternalServer)
	}
	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *accountService) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired refresh token", common.ErrUnauthorized)
	}

	// Reject tokens of users deleted since issuance.
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: account no longer exists", common.ErrUnauthorized)
	}

	access, refresh, err := s.tokens.GenerateTokens(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to refresh tokens")
		return nil, fmt.Errorf("%w: could not refresh session", common.ErrInternalServer)
	}
	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *accountService) Profile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", common.ErrNotFound)
		}
		return nil, err
	}
	return userToResponse(user), nil
}

// Delete removes the account after re-verifying the password.
func (s *accountService) Delete(userID uint, password string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", common.ErrNotFound)
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return fmt.Errorf("%w: password verification failed", common.ErrForbidden)
	}
	return s.userRepo.Delete(userID)
}

func userToResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
