package dto

import authdomain "legox-backend/internal/auth/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}

type RegisterResponse struct {
	TokenResponse
	MailSent bool `json:"mail_sent"`
}

// UpdateProfileRequest carries the attributes to replace. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Password *string `json:"password"`
	Nickname *string `json:"nickname"`
	Logo     *string `json:"logo"`
}

// ProfileUpdateResult reports per-attribute outcomes. Each attribute is an
// independent store write, so a mid-sequence failure leaves earlier writes
// applied; callers see exactly which ones landed.
type ProfileUpdateResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

func (r *ProfileUpdateResult) Partial() bool { return len(r.Failed) > 0 }
