// Package account orchestrates the account lifecycle flows: signup with
// email verification, signin, forgot/reset password and profile updates.
package account

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"

	"github.com/labstack/gommon/log"

	"github.com/docnest/docnest/internal/model"
	"github.com/docnest/docnest/internal/service/credential"
	"github.com/docnest/docnest/internal/service/token"
	"github.com/docnest/docnest/internal/store"
)

// Notifier is the slice of the mailer the account flows need.
type Notifier interface {
	SendVerification(ctx context.Context, to string, actionToken string) error
	SendPasswordReset(ctx context.Context, to string, actionToken string) error
}

type Service struct {
	directory store.UserDirectory
	notifier  Notifier
	tokens    *token.Service
	logger    *log.Logger
}

func New(directory store.UserDirectory, notifier Notifier, tokens *token.Service, logger *log.Logger) *Service {
	return &Service{
		directory: directory,
		notifier:  notifier,
		tokens:    tokens,
		logger:    logger,
	}
}

// Signup creates an unverified user record and mails a verification link.
// The record is kept even when the mail cannot be sent; the caller sees
// ErrorSendFailed and the recipient stays discoverable through the outbox.
func (s *Service) Signup(ctx context.Context, params *model.SignupParams) error {
	if err := validateSignup(params); err != nil {
		return err
	}

	_, err := s.directory.FindByEmail(ctx, params.Email)
	if err == nil {
		return model.ErrorDuplicateEmail
	}
	if !errors.Is(err, model.ErrorUserNotFound) {
		return fmt.Errorf("checking for existing user: %w", err)
	}

	hashed, err := credential.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:   params.Username,
		Email:      params.Email,
		Password:   hashed,
		Verified:   false,
		Role:       model.RoleMember,
		ReferrerID: s.resolveReferrer(ctx, params.EncodedReferrer),
	}

	// The existence check above is racy; the unique email index makes the
	// insert the authoritative duplicate check.
	if _, err := s.directory.Create(ctx, user); err != nil {
		return err
	}

	actionToken, err := s.tokens.IssueAction(token.PurposeVerifyEmail, params.Email)
	if err != nil {
		return fmt.Errorf("issuing verification token: %w", err)
	}

	if err := s.notifier.SendVerification(ctx, params.Email, actionToken); err != nil {
		return model.ErrorSendFailed
	}

	s.logger.Infof("signup completed for %s", params.Email)
	return nil
}

// VerifyEmail marks the account verified once the action token proves
// control of the address. The token is bound to a single address; presenting
// it against any other address is rejected.
func (s *Service) VerifyEmail(ctx context.Context, params *model.VerifyParams) error {
	claims, err := s.tokens.VerifyAction(params.Token, token.PurposeVerifyEmail)
	if err != nil {
		return err
	}
	if claims.Email != params.Email {
		return model.ErrorTokenInvalid
	}

	if _, err := s.directory.UpdateFields(ctx, claims.Email, map[string]any{"verified": true}); err != nil {
		return err
	}

	s.logger.Infof("email verified for %s", claims.Email)
	return nil
}

// Signin authenticates the user and returns a session token. Unverified
// accounts are refused regardless of credentials.
func (s *Service) Signin(ctx context.Context, params *model.SigninParams) (string, error) {
	user, err := s.directory.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, model.ErrorUserNotFound) {
			return "", model.ErrorInvalidEmail
		}
		return "", err
	}

	match, err := credential.Verify(params.Password, user.Password)
	if err != nil {
		return "", fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return "", model.ErrorIncorrectPassword
	}

	if !user.Verified {
		return "", model.ErrorUnverifiedAccount
	}

	sessionToken, err := s.tokens.IssueSession(user, params.Remember)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}

	s.logger.Infof("signin succeeded for %s", params.Email)
	return sessionToken, nil
}

// ForgotPassword mails a reset link when the address is registered.
func (s *Service) ForgotPassword(ctx context.Context, params *model.ForgotPasswordParams) error {
	if _, err := s.directory.FindByEmail(ctx, params.Email); err != nil {
		return err
	}

	actionToken, err := s.tokens.IssueAction(token.PurposeResetPassword, params.Email)
	if err != nil {
		return fmt.Errorf("issuing reset token: %w", err)
	}

	return s.notifier.SendPasswordReset(ctx, params.Email, actionToken)
}

// ResetPassword replaces the stored hash and re-marks the account verified:
// acting on the reset link proves control of the email address. The token is
// checked before any hashing so a rejected reset never computes a hash, and
// only the address the token was issued for can be reset with it.
func (s *Service) ResetPassword(ctx context.Context, params *model.ResetPasswordParams) error {
	if _, err := s.directory.FindByEmail(ctx, params.Email); err != nil {
		return err
	}

	claims, err := s.tokens.VerifyAction(params.Token, token.PurposeResetPassword)
	if err != nil {
		return err
	}
	if claims.Email != params.Email {
		return model.ErrorTokenInvalid
	}

	hashed, err := credential.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("hashing new password: %w", err)
	}

	fields := map[string]any{
		"password": hashed,
		"verified": true,
	}
	if _, err := s.directory.UpdateFields(ctx, claims.Email, fields); err != nil {
		return err
	}

	s.logger.Infof("password reset for %s", claims.Email)
	return nil
}

// UpdateProfile renames the account and reissues the session token so the
// claims reflect the new display name.
func (s *Service) UpdateProfile(ctx context.Context, params *model.UpdateProfileParams) (string, error) {
	user, err := s.directory.UpdateFields(ctx, params.Email, map[string]any{"username": params.Name})
	if err != nil {
		return "", err
	}

	sessionToken, err := s.tokens.IssueSession(user, params.Remember)
	if err != nil {
		return "", fmt.Errorf("reissuing session token: %w", err)
	}
	return sessionToken, nil
}

// UsernameAvailable reports whether no account holds the given display name.
func (s *Service) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.directory.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, model.ErrorUserNotFound) {
		return true, nil
	}
	return false, err
}

// Fetch returns the record for the authenticated caller.
func (s *Service) Fetch(ctx context.Context, email string) (*model.User, error) {
	return s.directory.FindByEmail(ctx, email)
}

func validateSignup(params *model.SignupParams) error {
	if params.Username == "" {
		return model.ErrorValidation
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return model.ErrorValidation
	}
	if len(params.Password) < 12 {
		return model.ErrorValidation
	}
	return nil
}

// resolveReferrer decodes the optional base64 referrer email carried by
// invite links. A referrer that cannot be decoded or found is ignored.
func (s *Service) resolveReferrer(ctx context.Context, encoded string) string {
	if encoded == "" {
		return ""
	}
	referrerEmail, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	referrer, err := s.directory.FindByEmail(ctx, string(referrerEmail))
	if err != nil {
		return ""
	}
	return referrer.ID.Hex()
}
