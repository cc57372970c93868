package model

import "time"

// ContestProblem attaches a problem to a contest with a point value and a
// 1-based presentation order. Rows are hard-deleted so a removed problem can
// be re-added; orders of remaining problems are not renumbered.
type ContestProblem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ContestID uint      `json:"contest_id" gorm:"not null;uniqueIndex:idx_contest_problem"`
	Contest   Contest   `json:"-" gorm:"foreignKey:ContestID"`
	ProblemID uint      `json:"problem_id" gorm:"not null;uniqueIndex:idx_contest_problem"`
	Problem   Problem   `json:"problem,omitempty" gorm:"foreignKey:ProblemID"`
	Points    int       `json:"points" gorm:"not null;default:100"`
	Order     int       `json:"order" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

const DefaultProblemPoints = 100
