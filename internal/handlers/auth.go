package handlers

import (
	"net/http"
	"time"

	"github.com/centsible/centsible/internal/middleware"
	"github.com/centsible/centsible/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type RegisterResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "password must be at least 8 characters", Code: CodeValidationError})
		case services.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email already registered", Code: CodeValidationError})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed", Code: CodeInternalError})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Success: true,
		User:    userSummary(user.ID, user.Name, user.Email, user.CreatedAt),
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials, return a bearer token and establish a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password", Code: CodeUnauthenticated})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed", Code: CodeInternalError})
		}
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to establish session", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    userSummary(user.ID, user.Name, user.Email, user.CreatedAt),
	})
}

// Logout godoc
// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear session", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "logged out"})
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Remove the authenticated user and all owned transactions and piggybanks
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if err := h.authService.DeleteAccount(userID); err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found", Code: CodeNotFound})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete account", Code: CodeInternalError})
		}
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	session.Save()

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "account deleted"})
}

func userSummary(id uint, name, email string, createdAt time.Time) UserSummary {
	return UserSummary{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}
