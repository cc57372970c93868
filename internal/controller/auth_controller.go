package controller

import (
	"net/http"

	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/middleware"
	"github.com/falconakhil/CompeteHub/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	accounts service.AccountService
}

func NewAuthController(accounts service.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

// Signup godoc
// @Summary Create a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.SignupRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Username or email taken"
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.accounts.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate and receive a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tokens, err := ctrl.accounts.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tokens, err := ctrl.accounts.Refresh(req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	user, err := ctrl.accounts.Profile(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete the authenticated user's account
// @Description Requires the current password to be re-supplied.
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param confirmation body dto.DeleteAccountRequest true "Password confirmation"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Password verification failed"
// @Router /auth/delete [post]
func (ctrl *AuthController) Delete(c *gin.Context) {
	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.accounts.Delete(middleware.CurrentUserID(c), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
