package dto

import "time"

type SubmitAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type SubmissionResponse struct {
	ID        uint      `json:"id"`
	ProblemID uint      `json:"problem_id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Remarks   string    `json:"remarks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContestSubmissionResponse is returned after a contest submission is judged;
// it carries the updated participation totals next to the submission outcome.
type ContestSubmissionResponse struct {
	Submission       SubmissionResponse `json:"submission"`
	PointsAwarded    int                `json:"points_awarded"`
	TotalScore       int                `json:"total_score"`
	SubmissionsCount int                `json:"submissions_count"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type UserRankResponse struct {
	Username string `json:"username"`
	Rank     int    `json:"rank"`
	Score    int    `json:"score"`
}
