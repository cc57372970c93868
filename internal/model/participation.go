package model

import "time"

// Participation is a user's registration record and running score for one
// contest. Rows are hard-deleted on unregistration so the user can register
// again while the contest is still upcoming.
type Participation struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	UserID             uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_contest"`
	User               User       `json:"-" gorm:"foreignKey:UserID"`
	ContestID          uint       `json:"contest_id" gorm:"not null;uniqueIndex:idx_user_contest"`
	Contest            Contest    `json:"-" gorm:"foreignKey:ContestID"`
	Score              int        `json:"score" gorm:"not null;default:0"`
	SubmissionsCount   int        `json:"submissions_count" gorm:"not null;default:0"`
	LastSubmissionTime *time.Time `json:"last_submission_time,omitempty"`
	RegistrationTime   time.Time  `json:"registration_time" gorm:"autoCreateTime"`
}
