package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/internal/domain/types"
	"github.com/spinwager/casino-backend/pkg/logger"
	wrap "github.com/spinwager/casino-backend/pkg/logger/wrapper"
	"github.com/spinwager/casino-backend/pkg/metrics"
	"github.com/spinwager/casino-backend/pkg/passhash"
)

type AuthService struct {
	userRepo UserRepo
	tokens   TokenProvider
	log      logger.Logger
}

func NewAuthService(userRepo UserRepo, tokens TokenProvider, log logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// Register creates a new user and returns the profile with a freshly issued
// token. Exactly one user per email: the pre-check handles the common case,
// the unique index resolves the concurrent one.
func (s *AuthService) Register(ctx context.Context, req *models.UserCreateRequest) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "register_user")
	ctx = wrap.WithEmail(ctx, req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error(ctx, "failed to check email existence", err)
		return nil, ErrUnexpected
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := passhash.HashPassword(req.Password)
	if err != nil {
		s.log.Error(ctx, "failed to hash password", err)
		return nil, ErrUnexpected
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		Mobile:       req.Mobile,
		Aadhaar:      req.Aadhaar,
		PasswordHash: hash,
	}

	if _, err := s.userRepo.CreateUser(ctx, &user); err != nil {
		// Two concurrent registrations can both pass the exists check; the
		// store rejects the second insert.
		if errors.Is(err, types.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		s.log.Error(ctx, "failed to save user", err)
		return nil, ErrUnexpected
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.log.Error(ctx, "failed to issue token", err)
		return nil, ErrUnexpected
	}

	metrics.RegistrationsTotal.WithLabelValues(types.ServiceName).Inc()
	s.log.Info(ctx, "user registered", "user_id", user.ID)

	return models.NewAuthResponse(&user, token), nil
}

// Login verifies credentials and issues a fresh token on every call. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "login_user")
	ctx = wrap.WithEmail(ctx, email)

	resp, err := s.login(ctx, email, password)
	metrics.RecordLogin(types.ServiceName, err)
	return resp, err
}

func (s *AuthService) login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetUser(ctx, email)
	if err != nil {
		s.log.Error(ctx, "failed to look up user", err)
		return nil, ErrUnexpected
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !passhash.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.log.Error(ctx, "failed to issue token", err)
		return nil, ErrUnexpected
	}

	return models.NewAuthResponse(user, token), nil
}

// ValidateToken answers whether the presented Authorization header carries a
// verified, unexpired token for an existing user. It never returns an error:
// every failure, including store failures, collapses to false.
func (s *AuthService) ValidateToken(ctx context.Context, authHeader string) bool {
	ctx = wrap.WithAction(ctx, "validate_token")

	valid := s.validate(ctx, authHeader)
	metrics.RecordTokenValidation(types.ServiceName, valid)
	return valid
}

func (s *AuthService) validate(ctx context.Context, authHeader string) bool {
	token, err := bearerToken(authHeader)
	if err != nil {
		return false
	}

	subject, err := s.tokens.ExtractSubject(token)
	if err != nil {
		return false
	}

	if s.tokens.IsExpired(token) {
		return false
	}

	user, err := s.userRepo.GetUser(ctx, subject)
	if err != nil {
		s.log.Error(ctx, "failed to look up user during validation", err)
		return false
	}
	return user != nil
}

// GetProfile re-reads the profile for the token's subject and echoes the
// presented token back. It never mints a new token.
func (s *AuthService) GetProfile(ctx context.Context, authHeader string) (*models.AuthResponse, error) {
	ctx = wrap.WithAction(ctx, "get_profile")

	token, err := bearerToken(authHeader)
	if err != nil {
		return nil, ErrUnauthorized
	}

	subject, err := s.tokens.ExtractSubject(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if s.tokens.IsExpired(token) {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetUser(ctx, subject)
	if err != nil {
		s.log.Error(ctx, "failed to look up user for profile", err)
		return nil, ErrUnexpected
	}
	if user == nil {
		// Token subject no longer exists, e.g. the account was removed after
		// issuance.
		return nil, types.ErrUserNotFound
	}

	return models.NewAuthResponse(user, token), nil
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header format")
	}
	return parts[1], nil
}
