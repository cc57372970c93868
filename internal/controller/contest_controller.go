package controller

import (
	"net/http"
	"strconv"

	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/middleware"
	"github.com/falconakhil/CompeteHub/internal/service"
	"github.com/gin-gonic/gin"
)

type ContestController struct {
	contests      service.ContestService
	registrations service.RegistrationService
	problems      service.ContestProblemService
	submissions   service.SubmissionService
}

func NewContestController(
	contests service.ContestService,
	registrations service.RegistrationService,
	problems service.ContestProblemService,
	submissions service.SubmissionService,
) *ContestController {
	return &ContestController{
		contests:      contests,
		registrations: registrations,
		problems:      problems,
		submissions:   submissions,
	}
}

// Create godoc
// @Summary Create a contest
// @Description Starting time must be in the future; duration is whole minutes.
// @Tags contests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contest body dto.CreateContestRequest true "Contest data"
// @Success 201 {object} dto.ContestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /contests [post]
func (ctrl *ContestController) Create(c *gin.Context) {
	var req dto.CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := ctrl.contests.Create(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contest)
}

// Detail godoc
// @Summary Get a contest
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Success 200 {object} dto.ContestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id} [get]
func (ctrl *ContestController) Detail(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	contest, err := ctrl.contests.Detail(contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// Delete godoc
// @Summary Delete a contest
// @Description Creator-only, and only before the contest starts.
// @Tags contests
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id} [delete]
func (ctrl *ContestController) Delete(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.contests.Delete(middleware.CurrentUserID(c), contestID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFuture godoc
// @Summary List the caller's upcoming contests
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ContestResponse
// @Router /contests/list/future [get]
func (ctrl *ContestController) ListFuture(c *gin.Context) {
	contests, err := ctrl.contests.ListFuture(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}

// ListActive godoc
// @Summary List currently active contests
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ContestResponse
// @Router /contests/list/active [get]
func (ctrl *ContestController) ListActive(c *gin.Context) {
	contests, err := ctrl.contests.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}

// ListCompleted godoc
// @Summary List completed contests within a date range
// @Description Defaults to the last 30 days. Dates use YYYY-MM-DD.
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.ContestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date format"
// @Router /contests/list/completed [get]
func (ctrl *ContestController) ListCompleted(c *gin.Context) {
	var query dto.CompletedContestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contests, err := ctrl.contests.ListCompleted(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}

// Register godoc
// @Summary Register for a contest
// @Description Only possible before the contest starts.
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Success 201 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Contest already started"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /contests/{id}/register [post]
func (ctrl *ContestController) Register(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.registrations.Register(middleware.CurrentUserID(c), contestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Detail: "Successfully registered for contest"})
}

// Unregister godoc
// @Summary Unregister from a contest
// @Description Only possible before the contest starts.
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Contest already started"
// @Failure 404 {object} dto.ErrorResponse "Not registered"
// @Router /contests/{id}/register [delete]
func (ctrl *ContestController) Unregister(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.registrations.Unregister(middleware.CurrentUserID(c), contestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Detail: "Successfully unregistered from contest"})
}

// ListProblems godoc
// @Summary List a contest's problems in presentation order
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id}/problems [get]
func (ctrl *ContestController) ListProblems(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize, offset := pageParams(c)

	problems, count, err := ctrl.problems.ListProblems(contestID, offset, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Page: page, PageSize: pageSize, Results: problems})
}

// AddProblems godoc
// @Summary Attach problems to a contest
// @Description Creator-only, before the contest starts. Idempotent per problem.
// @Tags contests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param problems body dto.AddProblemsRequest true "Problem IDs"
// @Success 200 {object} dto.AddProblemsResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown problem ID"
// @Failure 403 {object} dto.ErrorResponse
// @Router /contests/{id}/problems [post]
func (ctrl *ContestController) AddProblems(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AddProblemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	added, err := ctrl.problems.AddProblems(middleware.CurrentUserID(c), contestID, req.ProblemIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AddProblemsResponse{Detail: "Successfully added problems to contest", AddedProblems: added})
}

// RemoveProblem godoc
// @Summary Detach a problem from a contest
// @Description Creator-only, before the contest starts. Remaining orders are not renumbered.
// @Tags contests
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param problem_id path int true "Problem ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id}/problems/{problem_id} [delete]
func (ctrl *ContestController) RemoveProblem(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	problemID, ok := uintParam(c, "problem_id")
	if !ok {
		return
	}
	if err := ctrl.problems.RemoveProblem(middleware.CurrentUserID(c), contestID, problemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProblemByOrder godoc
// @Summary Get the contest problem at a 1-based order
// @Description Caller must be registered and the contest must be active.
// @Tags contests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param order path int true "Problem order"
// @Success 200 {object} dto.ContestProblemResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /contests/{id}/problems/order/{order} [get]
func (ctrl *ContestController) GetProblemByOrder(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil || order < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order format"})
		return
	}

	problem, err := ctrl.problems.GetProblemByOrder(middleware.CurrentUserID(c), contestID, order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// Submit godoc
// @Summary Submit an answer for the contest problem at an order
// @Description Judged by the problem's evaluation mode. Points are awarded once per problem.
// @Tags contests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contest ID"
// @Param order path int true "Problem order"
// @Param answer body dto.SubmitAnswerRequest true "Submitted answer"
// @Success 201 {object} dto.ContestSubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Already solved"
// @Failure 403 {object} dto.ErrorResponse "Not registered or contest not active"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Scoring oracle unavailable"
// @Router /contests/{id}/problems/order/{order}/submit [post]
func (ctrl *ContestController) Submit(c *gin.Context) {
	contestID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil || order < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order format"})
		return
	}
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.submissions.Submit(c.Request.Context(), middleware.CurrentUserID(c), contestID, order, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
