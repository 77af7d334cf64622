package usecase

import (
	authdomain "legox-backend/internal/auth/domain"
	authdto "legox-backend/internal/auth/dto"
)

// AuthUsecase covers registration, login, the bearer token lifecycle and
// profile mutation.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	// IssueToken mints a fresh opaque token for the email. Retry-safe: each
	// call simply creates another valid token.
	IssueToken(email string) (string, error)
	// ResolveEmail returns the email bound to a valid, unexpired code
	ResolveEmail(code string) (string, error)
	// ValidateToken resolves the code and loads the owning user
	ValidateToken(code string) (*authdomain.User, error)
	UpdateProfile(email string, req *authdto.UpdateProfileRequest) (*authdto.ProfileUpdateResult, error)
}
