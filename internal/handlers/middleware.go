package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/docnest/docnest/internal/service/token"
)

// AuthHeader is the request header carrying the session token, optionally
// prefixed with "Bearer ".
const AuthHeader = "x-auth-token"

const identityContextKey = "identity"

// Auth gates private routes: it verifies the session token from AuthHeader
// and attaches the decoded claims to the request context.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerToken := c.Request().Header.Get(AuthHeader)
			if bearerToken == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "No token, authorization denied"})
			}

			claims, err := tokens.VerifySession(strings.TrimPrefix(bearerToken, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Token is not valid"})
			}

			c.Set(identityContextKey, claims)
			return next(c)
		}
	}
}

// Identity returns the session claims the Auth middleware stored for this
// request, or nil on public routes.
func Identity(c echo.Context) *token.SessionClaims {
	claims, _ := c.Get(identityContextKey).(*token.SessionClaims)
	return claims
}
