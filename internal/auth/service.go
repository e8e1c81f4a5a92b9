// Package auth registers and logs in users and authenticates requests with
// HS256 access tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

const (
	defaultAccessTTL = 15 * time.Minute
	minPasswordLen   = 8
)

// Error codes returned by Register and Login.
const (
	CodeEmailAlreadyUsed   = "EMAIL_ALREADY_USED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Service issues and verifies access tokens.
type Service struct {
	store  db.Store
	tokens tokenCodec
	now    func() time.Time
}

// Config configures the auth service.
type Config struct {
	Store          db.Store
	Secret         string
	AccessTokenTTL time.Duration
	Issuer         string
	Audience       string
	ClockSkew      time.Duration
}

// User is the public part of an account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	User         User      `json:"user"`
	AccessToken  string    `json:"accessToken"`
	AccessExpiry time.Time `json:"accessTokenExpiresAt"`
}

// NewService constructs a Service instance with defaults applied.
func NewService(cfg Config) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("auth: store is required")
	}
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("auth: secret is required")
	}
	accessTTL := cfg.AccessTokenTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = "toko-checkout"
	}
	audience := strings.TrimSpace(cfg.Audience)
	if audience == "" {
		audience = "toko-frontend"
	}
	return &Service{
		store: cfg.Store,
		now:   time.Now,
		tokens: tokenCodec{
			secret:   []byte(secret),
			issuer:   issuer,
			audience: audience,
			skew:     max(cfg.ClockSkew, 0),
			ttl:      accessTTL,
		},
	}, nil
}

// WithNow allows tests to override the time provider.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func errInvalidCredentials() *common.AppError {
	return common.NewAppError(CodeInvalidCredentials, "invalid email or password", http.StatusUnauthorized, nil)
}

// Register creates a user with an argon2id password hash.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, common.BadRequest("VALIDATION_ERROR", "name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, common.BadRequest("VALIDATION_ERROR", "email is required")
	}
	if len(password) < minPasswordLen {
		return User{}, common.BadRequest("VALIDATION_ERROR", fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	var created gen.User
	err = s.store.InTx(ctx, func(q gen.Querier) error {
		var err error
		created, err = q.CreateUser(ctx, gen.CreateUserParams{Name: name, Email: email, PasswordHash: hash})
		return err
	})
	if db.IsUniqueViolation(err) {
		return User{}, common.NewAppError(CodeEmailAlreadyUsed, "email is already registered", http.StatusConflict, err)
	}
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return toUser(created), nil
}

// Login verifies credentials and issues an access token. Unknown, disabled
// and wrong-password attempts are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, errInvalidCredentials()
	}

	var u gen.User
	err := s.store.Read(ctx, func(q gen.Querier) error {
		var err error
		u, err = q.GetUserByEmail(ctx, email)
		return err
	})
	if db.IsNotFound(err) {
		return LoginResult{}, errInvalidCredentials()
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("load user: %w", err)
	}
	if u.DisabledAt.Valid {
		return LoginResult{}, errInvalidCredentials()
	}

	if !passwordMatches(password, u.PasswordHash) {
		return LoginResult{}, errInvalidCredentials()
	}

	user := toUser(u)
	token, expiry, err := s.tokens.issue(user.ID, s.now())
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign access token: %w", err)
	}
	return LoginResult{User: user, AccessToken: token, AccessExpiry: expiry}, nil
}

// Me returns the authenticated user. Disabled accounts are not found.
func (s *Service) Me(ctx context.Context, userID string) (User, error) {
	id, err := common.ParseUUID(userID)
	if err != nil {
		return User{}, common.Unauthorized()
	}
	var u gen.User
	err = s.store.Read(ctx, func(q gen.Querier) error {
		var err error
		u, err = ActiveUser(ctx, q, id)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return toUser(u), nil
}

// ParseAccessToken validates an access token and returns its subject.
func (s *Service) ParseAccessToken(token string) (string, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", common.NewAppError("UNAUTHORIZED", "missing token", http.StatusUnauthorized, nil)
	}
	subject, err := s.tokens.subject(trimmed, s.now())
	if err != nil {
		return "", invalidToken(err)
	}
	return subject, nil
}

func invalidToken(err error) *common.AppError {
	return common.NewAppError("UNAUTHORIZED", "invalid token", http.StatusUnauthorized, err)
}

func toUser(u gen.User) User {
	return User{
		ID:        common.UUIDString(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: common.Time(u.CreatedAt),
	}
}
