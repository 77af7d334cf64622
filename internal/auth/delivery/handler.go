package delivery

import (
	"net/http"

	authdomain "legox-backend/internal/auth/domain"
	authdto "legox-backend/internal/auth/dto"
	"legox-backend/internal/auth/usecase"
	"legox-backend/pkg/apperrors"
	"legox-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication and profile HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, apperrors.InvalidUsage("invalid email or password format"))
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and issues a fresh token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, apperrors.InvalidUsage("invalid email or password format"))
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		httputil.Error(c, apperrors.AuthFailed("not authenticated"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile replaces the provided profile attributes one by one
// PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		httputil.Error(c, apperrors.AuthFailed("not authenticated"))
		return
	}

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, apperrors.BadRequest("invalid request body"))
		return
	}

	result, err := h.authUsecase.UpdateProfile(user.Email, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	status := http.StatusOK
	if result.Partial() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// CurrentUser returns the user stored by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *authdomain.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
