package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/docnest/docnest/internal/model"
)

const (
	testSessionSecret = "session-secret-for-tests"
	testActionSecret  = "action-secret-for-tests"
)

func testUser() *model.User {
	return &model.User{
		Username: "alice",
		Email:    "a@x.com",
		Verified: true,
		Role:     model.RoleMember,
	}
}

func TestSessionToken(t *testing.T) {
	assert := assert.New(t)
	service := New(testSessionSecret, testActionSecret)

	t.Run("issue and verify", func(t *testing.T) {
		tokenString, err := service.IssueSession(testUser(), false)
		assert.Nil(err)

		claims, err := service.VerifySession(tokenString)
		assert.Nil(err)
		assert.Equal("a@x.com", claims.Email)
		assert.Equal("alice", claims.Username)
		assert.True(claims.Verified)
		assert.False(claims.Remember)

		expiry := claims.ExpiresAt.Time
		assert.WithinDuration(time.Now().Add(SessionValidity), expiry, time.Minute)
	})

	t.Run("remember extends validity", func(t *testing.T) {
		tokenString, err := service.IssueSession(testUser(), true)
		assert.Nil(err)

		claims, err := service.VerifySession(tokenString)
		assert.Nil(err)
		assert.True(claims.Remember)
		assert.WithinDuration(time.Now().Add(RememberValidity), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("expired", func(t *testing.T) {
		tokenString, err := service.issueSession(testUser(), false, -time.Second)
		assert.Nil(err)

		_, err = service.VerifySession(tokenString)
		assert.ErrorIs(err, model.ErrorTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New("a-different-secret", testActionSecret)
		tokenString, err := other.IssueSession(testUser(), false)
		assert.Nil(err)

		_, err = service.VerifySession(tokenString)
		assert.ErrorIs(err, model.ErrorTokenInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := service.VerifySession("not.a.jwt")
		assert.ErrorIs(err, model.ErrorTokenInvalid)
	})

	t.Run("session secret does not verify action tokens", func(t *testing.T) {
		tokenString, err := service.IssueSession(testUser(), false)
		assert.Nil(err)

		_, err = service.VerifyAction(tokenString, PurposeVerifyEmail)
		assert.ErrorIs(err, model.ErrorTokenInvalid)
	})
}

func TestActionToken(t *testing.T) {
	assert := assert.New(t)
	service := New(testSessionSecret, testActionSecret)

	t.Run("issue and verify", func(t *testing.T) {
		tokenString, err := service.IssueAction(PurposeVerifyEmail, "a@x.com")
		assert.Nil(err)

		claims, err := service.VerifyAction(tokenString, PurposeVerifyEmail)
		assert.Nil(err)
		assert.Equal("a@x.com", claims.Email)
		assert.Equal(PurposeVerifyEmail, claims.Purpose)
		assert.NotEmpty(claims.ID)
		assert.WithinDuration(time.Now().Add(ActionValidity), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("purpose mismatch", func(t *testing.T) {
		tokenString, err := service.IssueAction(PurposeVerifyEmail, "a@x.com")
		assert.Nil(err)

		_, err = service.VerifyAction(tokenString, PurposeResetPassword)
		assert.ErrorIs(err, model.ErrorTokenPurposeMismatch)
	})

	t.Run("expired", func(t *testing.T) {
		tokenString, err := service.issueAction(PurposeResetPassword, "a@x.com", -time.Second)
		assert.Nil(err)

		_, err = service.VerifyAction(tokenString, PurposeResetPassword)
		assert.ErrorIs(err, model.ErrorTokenExpired)
	})
}
