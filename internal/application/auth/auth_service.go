package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/identity"
	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/daffodil/backend/internal/infrastructure/auth"
)

// LoginRequest exchanges the back-office API key for a session token.
// Passwords live with the hosted identity provider; this service only
// gates the admin API.
type LoginRequest struct {
	Email  string `json:"email" binding:"required,email"`
	APIKey string `json:"api_key" binding:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService issues and revokes admin session tokens
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	apiKey     string
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, blacklist auth.TokenBlacklist, apiKey string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Login validates the API key and the admin flags on the account, then
// issues a session token. Lookup failures and bad keys both report
// invalid credentials so the response does not reveal which was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	invalid := shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or API key")

	if s.apiKey == "" {
		return nil, shared.NewDomainError("AUTH_DISABLED", "Admin login is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(s.apiKey)) != 1 {
		return nil, invalid
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalid
	}
	if !user.CanAccessAdmin() {
		s.logger.Warn("Admin login rejected",
			zap.String("email", user.Email),
			zap.Bool("is_admin", user.IsAdmin),
			zap.Bool("suspended", user.Suspended))
		return nil, invalid
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// Logout revokes a session token by blacklisting its JTI for the
// remainder of its validity.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	remaining := claims.RemainingValidity()
	if remaining <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, remaining)
}
