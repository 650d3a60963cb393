package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docnest/docnest/internal/model"
)

type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify-email"
	PurposeResetPassword Purpose = "reset-password"
)

const (
	SessionValidity  = 5 * 24 * time.Hour
	RememberValidity = 90 * 24 * time.Hour
	ActionValidity   = 10 * time.Minute
)

// SessionClaims is the payload of a stateless session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email    string     `json:"email"`
	Verified bool       `json:"verified"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	Remember bool       `json:"remember"`
}

// ActionClaims is the payload of a short-lived email-action token. Purpose
// pins a token to a single flow so a verify token cannot be replayed against
// the reset flow.
type ActionClaims struct {
	jwt.RegisteredClaims
	Email   string  `json:"email"`
	Purpose Purpose `json:"purpose"`
}

// Service signs and verifies session and action tokens. The two token kinds
// use independently configured secrets.
type Service struct {
	sessionSecret []byte
	actionSecret  []byte
}

func New(sessionSecret, actionSecret string) *Service {
	return &Service{
		sessionSecret: []byte(sessionSecret),
		actionSecret:  []byte(actionSecret),
	}
}

func (s *Service) IssueSession(user *model.User, remember bool) (string, error) {
	validity := SessionValidity
	if remember {
		validity = RememberValidity
	}
	return s.issueSession(user, remember, validity)
}

func (s *Service) issueSession(user *model.User, remember bool, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email:    user.Email,
		Verified: user.Verified,
		Username: user.Username,
		Role:     user.Role,
		Remember: remember,
	})
	return token.SignedString(s.sessionSecret)
}

func (s *Service) VerifySession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.sessionSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, mapJWTError(err)
	}
	if !parsed.Valid {
		return nil, model.ErrorTokenInvalid
	}
	return claims, nil
}

func (s *Service) IssueAction(purpose Purpose, email string) (string, error) {
	return s.issueAction(purpose, email, ActionValidity)
}

func (s *Service) issueAction(purpose Purpose, email string, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ActionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        model.CreateID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email:   email,
		Purpose: purpose,
	})
	return token.SignedString(s.actionSecret)
}

func (s *Service) VerifyAction(tokenString string, expected Purpose) (*ActionClaims, error) {
	claims := &ActionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.actionSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, mapJWTError(err)
	}
	if !parsed.Valid {
		return nil, model.ErrorTokenInvalid
	}
	if claims.Purpose != expected {
		return nil, model.ErrorTokenPurposeMismatch
	}
	return claims, nil
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return model.ErrorTokenExpired
	}
	return model.ErrorTokenInvalid
}
