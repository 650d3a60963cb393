package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/docnest/docnest/internal/model"
	"github.com/docnest/docnest/internal/service/token"
)

func TestAuthMiddleware(t *testing.T) {
	assert := assert.New(t)

	tokens := token.New("session-secret-for-tests", "action-secret-for-tests")
	user := &model.User{Username: "alice", Email: "a@x.com", Verified: true}

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	run := func(header string) (*httptest.ResponseRecorder, echo.Context) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(AuthHeader, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		err := Auth(tokens)(next)(c)
		assert.Nil(err)
		return rec, c
	}

	t.Run("missing header", func(t *testing.T) {
		rec, _ := run("")
		assert.Equal(http.StatusUnauthorized, rec.Code)
		assert.Contains(rec.Body.String(), "No token, authorization denied")
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, _ := run("not.a.jwt")
		assert.Equal(http.StatusUnauthorized, rec.Code)
		assert.Contains(rec.Body.String(), "Token is not valid")
	})

	t.Run("action token is not a session", func(t *testing.T) {
		actionToken, err := tokens.IssueAction(token.PurposeVerifyEmail, "a@x.com")
		assert.Nil(err)

		rec, _ := run(actionToken)
		assert.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		sessionToken, err := tokens.IssueSession(user, false)
		assert.Nil(err)

		rec, c := run(sessionToken)
		assert.Equal(http.StatusOK, rec.Code)

		claims := Identity(c)
		assert.NotNil(claims)
		assert.Equal("a@x.com", claims.Email)
		assert.Equal("alice", claims.Username)
	})

	t.Run("bearer prefix is stripped", func(t *testing.T) {
		sessionToken, err := tokens.IssueSession(user, false)
		assert.Nil(err)

		rec, _ := run("Bearer " + sessionToken)
		assert.Equal(http.StatusOK, rec.Code)
	})
}
