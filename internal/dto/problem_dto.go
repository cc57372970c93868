package dto

import "time"

type CreateProblemRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Question   string   `json:"question" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	EvalMode   string   `json:"eval_mode" binding:"omitempty,oneof=exact llm none"`
	GenreNames []string `json:"genre_names"`
}

type ProblemResponse struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	Question  string          `json:"question"`
	Genres    []GenreResponse `json:"genres,omitempty"`
	EvalMode  string          `json:"eval_mode"`
	CreatorID uint            `json:"creator_id"`
	CreatedAt time.Time       `json:"created_at"`
}
