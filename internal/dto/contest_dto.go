package dto

import "time"

// CreateContestRequest accepts the contest duration as whole minutes; it is
// converted to a time span at the boundary and stored that way everywhere
// else.
type CreateContestRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	Description     string    `json:"description"`
	StartingTime    time.Time `json:"starting_time" binding:"required"`
	DurationMinutes int       `json:"duration" binding:"required,gt=0"`
	GenreNames      []string  `json:"genre_names"`
}

type ContestResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	StartingTime    time.Time       `json:"starting_time"`
	DurationMinutes int             `json:"duration"`
	EndTime         time.Time       `json:"end_time"`
	Status          string          `json:"status"`
	Genres          []GenreResponse `json:"genres,omitempty"`
	CreatorID       uint            `json:"creator_id"`
	CreatorUsername string          `json:"creator_username,omitempty"`
}

// CompletedContestsQuery filters the completed-contests listing by end time.
// Dates use YYYY-MM-DD; end_date is inclusive through end of day.
type CompletedContestsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type AddProblemsRequest struct {
	ProblemIDs []uint `json:"problem_ids" binding:"required,min=1"`
}

type AddProblemsResponse struct {
	Detail        string `json:"detail"`
	AddedProblems []uint `json:"added_problems"`
}

type ContestProblemResponse struct {
	ProblemID uint            `json:"problem_id"`
	Title     string          `json:"title"`
	Question  string          `json:"question"`
	Genres    []GenreResponse `json:"genres,omitempty"`
	EvalMode  string          `json:"eval_mode"`
	Points    int             `json:"points"`
	Order     int             `json:"order"`
}
