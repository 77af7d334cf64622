package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "legox-backend/internal/auth/domain"
	authdto "legox-backend/internal/auth/dto"
	"legox-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const validCode = "0123456789abcdef0123456789abcdef"

// stubAuthUsecase resolves exactly one known code.
type stubAuthUsecase struct{}

func (s *stubAuthUsecase) Register(*authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(*authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) IssueToken(string) (string, error) { return validCode, nil }

func (s *stubAuthUsecase) ResolveEmail(code string) (string, error) {
	if code == validCode {
		return "alice@example.com", nil
	}
	return "", apperrors.TokenNotFound("token not found")
}

func (s *stubAuthUsecase) ValidateToken(code string) (*authdomain.User, error) {
	if code == validCode {
		return &authdomain.User{Email: "alice@example.com"}, nil
	}
	return nil, apperrors.TokenNotFound("token not found")
}

func (s *stubAuthUsecase) UpdateProfile(string, *authdto.UpdateProfileRequest) (*authdto.ProfileUpdateResult, error) {
	return nil, nil
}

// partialProfileUsecase reports one attribute applied and one failed.
type partialProfileUsecase struct {
	stubAuthUsecase
}

func (s *partialProfileUsecase) UpdateProfile(string, *authdto.UpdateProfileRequest) (*authdto.ProfileUpdateResult, error) {
	return &authdto.ProfileUpdateResult{
		Updated: []string{"nickname"},
		Failed:  map[string]string{"logo": "update failed"},
	}, nil
}

func performAuthed(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(&stubAuthUsecase{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := performAuthed(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeNoToken)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	w := performAuthed(t, "Basic "+validCode)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeNoToken)
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		w := performAuthed(t, scheme+" "+validCode)
		assert.Equal(t, http.StatusOK, w.Code, "scheme %q", scheme)
		assert.Contains(t, w.Body.String(), "alice@example.com")
	}
}

func TestAuthMiddleware_EmptyBearerCode(t *testing.T) {
	for _, header := range []string{"Bearer ", "Bearer   "} {
		w := performAuthed(t, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), apperrors.CodeNoToken)
	}
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	w := performAuthed(t, "Bearer ffffffffffffffffffffffffffffffff")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeTokenNotFound)
}
