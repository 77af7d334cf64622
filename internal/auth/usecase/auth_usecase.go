package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	authdomain "legox-backend/internal/auth/domain"
	authdto "legox-backend/internal/auth/dto"
	"legox-backend/internal/auth/repository"
	"legox-backend/pkg/apperrors"
	"legox-backend/pkg/config"
	"legox-backend/pkg/mailer"

	"gorm.io/gorm"
)

// Unknown email and wrong password must be indistinguishable to the caller
// (anti-enumeration).
const invalidLoginMessage = "unable to login: the email or password you provided is incorrect"

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    mailer.Mailer // optional, nil disables registration mail
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, m mailer.Mailer, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    m,
		config:    cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Nickname: authdomain.DefaultNickname,
		Logo:     authdomain.DefaultLogo,
	}

	// The insert itself is the uniqueness check; a pre-check would leave a
	// race window between check and insert.
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.AlreadyExists("the email has been registered")
		}
		return nil, err
	}

	// Independent write: a crash between user and token creation leaves a
	// registered user with no token, recovered by a later login.
	code, err := u.IssueToken(user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.RegisterResponse{
		TokenResponse: authdto.TokenResponse{Token: code, User: user},
		MailSent:      u.sendLoginMail(user.Email),
	}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.AuthFailed(invalidLoginMessage)
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.AuthFailed(invalidLoginMessage)
	}

	code, err := u.IssueToken(user.Email)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: code, User: user}, nil
}

func (u *authUsecase) IssueToken(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	token := &authdomain.AuthToken{
		Code:      code,
		Email:     email,
		Expires:   time.Now().Add(u.config.TokenTTL).Unix(),
		CreatedAt: time.Now(),
	}
	if err := u.tokenRepo.Save(token); err != nil {
		return "", err
	}

	return code, nil
}

func (u *authUsecase) ResolveEmail(code string) (string, error) {
	token, err := u.tokenRepo.FindByCode(code)
	if err != nil {
		return "", err
	}

	if token == nil {
		return "", apperrors.TokenNotFound("token not found")
	}

	if time.Now().Unix() > token.Expires {
		return "", apperrors.TokenExpired("token expired")
	}

	return token.Email, nil
}

func (u *authUsecase) ValidateToken(code string) (*authdomain.User, error) {
	email, err := u.ResolveEmail(code)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.AuthFailed("token owner no longer exists")
	}

	return user, nil
}

func (u *authUsecase) UpdateProfile(email string, req *authdto.UpdateProfileRequest) (*authdto.ProfileUpdateResult, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	// Each attribute is an independent store write; there is no
	// multi-attribute transaction. A mid-sequence failure leaves the
	// earlier writes applied, so the result reports every attribute.
	result := &authdto.ProfileUpdateResult{Updated: []string{}, Failed: map[string]string{}}

	if req.Password != nil && *req.Password != "" {
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			result.Failed["password"] = err.Error()
		} else {
			u.applyAttribute(result, email, "password", hashed)
		}
	}
	if req.Nickname != nil && *req.Nickname != "" {
		u.applyAttribute(result, email, "nickname", *req.Nickname)
	}
	if req.Logo != nil && *req.Logo != "" {
		u.applyAttribute(result, email, "logo", *req.Logo)
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result, nil
}

func (u *authUsecase) applyAttribute(result *authdto.ProfileUpdateResult, email, attribute, value string) {
	if err := u.userRepo.UpdateAttribute(email, attribute, value); err != nil {
		log.Printf("profile update %s failed for %s: %v", attribute, email, err)
		result.Failed[attribute] = "update failed"
		return
	}
	result.Updated = append(result.Updated, attribute)
}

func (u *authUsecase) sendLoginMail(email string) bool {
	if u.mailer == nil {
		return false
	}

	html := fmt.Sprintf(`Dear customer,<br>Please login with your registered email and password to the LegoExchanger: <a href="%s">login</a>.`, u.config.LoginURL)
	if err := u.mailer.Send(email, "Login to LegoExchanger", html); err != nil {
		// Best-effort: registration already succeeded
		log.Printf("login mail to %s failed: %v", email, err)
		return false
	}
	return true
}

// generateCode returns a 128-bit cryptographically random hex string.
func generateCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
