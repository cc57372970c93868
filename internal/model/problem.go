package model

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation modes for a problem. They select the scoring strategy used when
// judging a submission.
const (
	EvalModeExact = "exact" // case-insensitive match against the reference answer
	EvalModeLLM   = "llm"   // external LLM oracle, scored 0-100
	EvalModeNone  = "none"  // no automatic evaluation
)

type Problem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	Question  string         `json:"question" gorm:"type:text;not null"`
	Answer    string         `json:"-" gorm:"type:text;not null"` // reference answer, never serialized
	Genres    []Genre        `json:"genres,omitempty" gorm:"many2many:problem_genres;"`
	EvalMode  string         `json:"eval_mode" gorm:"not null;default:'exact'"`
	CreatorID uint           `json:"creator_id" gorm:"not null;index"`
	Creator   User           `json:"-" gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
