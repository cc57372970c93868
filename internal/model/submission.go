package model

import "time"

// Evaluation outcomes for a submission.
const (
	SubmissionCorrect = "Correct"
	SubmissionWrong   = "Wrong"
	SubmissionUnknown = "Unknown"
)

// Submission is an append-only record of one answer attempt. It is never
// mutated or deleted.
type Submission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	ProblemID uint      `json:"problem_id" gorm:"not null;index"`
	Problem   Problem   `json:"-" gorm:"foreignKey:ProblemID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"not null;default:'Unknown'"`
	Score     int       `json:"score" gorm:"not null;default:0"`
	Remarks   string    `json:"remarks" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
