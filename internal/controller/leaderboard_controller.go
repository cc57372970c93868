package controller

import (
	"net/http"
	"strconv"

	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/middleware"
	"github.com/falconakhil/CompeteHub/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 10

type LeaderboardController struct {
	leaderboard service.LeaderboardService
}

func NewLeaderboardController(leaderboard service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboard: leaderboard}
}

// Top godoc
// @Summary Get the top entries of a contest leaderboard
// @Description Entries are ordered by score descending. Defaults to 10 entries.
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param limit query int false "Number of entries"
// @Success 200 {array} dto.LeaderboardEntry
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id}/leaderboard [get]
func (ctrl *LeaderboardController) Top(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit format"})
			return
		}
		if parsed > maxPageSize {
			parsed = maxPageSize
		}
		limit = parsed
	}

	entries, err := ctrl.leaderboard.Top(c.Request.Context(), contestID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Rank godoc
// @Summary Get the caller's rank in a contest
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Success 200 {object} dto.UserRankResponse
// @Failure 404 {object} dto.ErrorResponse "Not participating"
// @Router /contests/{id}/leaderboard/rank [get]
func (ctrl *LeaderboardController) Rank(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	rank, err := ctrl.leaderboard.Rank(c.Request.Context(), contestID, middleware.CurrentUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rank)
}
