package controller

import (
	"net/http"

	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/middleware"
	"github.com/falconakhil/CompeteHub/internal/service"
	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	problems service.ProblemService
}

func NewProblemController(problems service.ProblemService) *ProblemController {
	return &ProblemController{problems: problems}
}

// Create godoc
// @Summary Create a problem
// @Tags problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param problem body dto.CreateProblemRequest true "Problem data"
// @Success 201 {object} dto.ProblemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /problems [post]
func (ctrl *ProblemController) Create(c *gin.Context) {
	var req dto.CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	problem, err := ctrl.problems.Create(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// List godoc
// @Summary List problems
// @Tags problems
// @Produce json
// @Security BearerAuth
// @Param genre query string false "Filter by genre name"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse
// @Router /problems [get]
func (ctrl *ProblemController) List(c *gin.Context) {
	page, pageSize, offset := pageParams(c)

	problems, count, err := ctrl.problems.List(c.Query("genre"), offset, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Page: page, PageSize: pageSize, Results: problems})
}

// SubmitDirect godoc
// @Summary Submit an answer to a problem outside any contest
// @Tags problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Problem ID"
// @Param answer body dto.SubmitAnswerRequest true "Submitted answer"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Scoring oracle unavailable"
// @Router /problems/{id}/submissions [post]
func (ctrl *ProblemController) SubmitDirect(c *gin.Context) {
	problemID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := ctrl.problems.SubmitDirect(c.Request.Context(), middleware.CurrentUserID(c), problemID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// ListSubmissions godoc
// @Summary List the caller's submissions for a problem
// @Tags problems
// @Produce json
// @Security BearerAuth
// @Param id path int true "Problem ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse
// @Router /problems/{id}/submissions [get]
func (ctrl *ProblemController) ListSubmissions(c *gin.Context) {
	problemID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize, offset := pageParams(c)

	subs, count, err := ctrl.problems.ListSubmissions(middleware.CurrentUserID(c), problemID, offset, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Page: page, PageSize: pageSize, Results: subs})
}
