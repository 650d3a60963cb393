package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docnest/docnest/internal/model"
)

// AccountService is the slice of the account workflows the HTTP layer uses.
type AccountService interface {
	Signup(ctx context.Context, params *model.SignupParams) error
	VerifyEmail(ctx context.Context, params *model.VerifyParams) error
	Signin(ctx context.Context, params *model.SigninParams) (string, error)
	ForgotPassword(ctx context.Context, params *model.ForgotPasswordParams) error
	ResetPassword(ctx context.Context, params *model.ResetPasswordParams) error
	UpdateProfile(ctx context.Context, params *model.UpdateProfileParams) (string, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	Fetch(ctx context.Context, email string) (*model.User, error)
}

func Signup(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.SignupParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err := accountService.Signup(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true})
		case errors.Is(err, model.ErrorValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, model.ErrorDuplicateEmail):
			return c.JSON(http.StatusConflict, echo.Map{"error": "User already exists"})
		case errors.Is(err, model.ErrorSendFailed):
			// The record was created; only the notification failed.
			return c.JSON(http.StatusOK, echo.Map{"success": false, "mail": "Can't send email!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func VerifyEmail(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.VerifyParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err := accountService.VerifyEmail(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true, "mail": "Email verification successed!"})
		case errors.Is(err, model.ErrorTokenExpired),
			errors.Is(err, model.ErrorTokenInvalid),
			errors.Is(err, model.ErrorTokenPurposeMismatch),
			errors.Is(err, model.ErrorUserNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Email verification failed!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func Signin(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.SigninParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		authToken, err := accountService.Signin(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"authToken": authToken})
		case errors.Is(err, model.ErrorInvalidEmail):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Email"})
		case errors.Is(err, model.ErrorIncorrectPassword):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Incorrect password"})
		case errors.Is(err, model.ErrorUnverifiedAccount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unverified member"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func ForgotPassword(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.ForgotPasswordParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err := accountService.ForgotPassword(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true, "mail": "Email verification link sent!"})
		case errors.Is(err, model.ErrorUserNotFound):
			return c.JSON(http.StatusOK, echo.Map{"success": false, "mail": "Can't find email!"})
		case errors.Is(err, model.ErrorSendFailed):
			return c.JSON(http.StatusOK, echo.Map{"success": false, "mail": "Can't send email!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func ResetPassword(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.ResetPasswordParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err := accountService.ResetPassword(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true, "mail": "Reset password successed!"})
		case errors.Is(err, model.ErrorUserNotFound):
			return c.JSON(http.StatusOK, echo.Map{"success": false, "mail": "Can't find email!"})
		case errors.Is(err, model.ErrorTokenExpired),
			errors.Is(err, model.ErrorTokenInvalid),
			errors.Is(err, model.ErrorTokenPurposeMismatch):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"error":   "Reset password failed because email verification failure!",
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

func UpdateProfile(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.UpdateProfileParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := c.Validate(params); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		authToken, err := accountService.UpdateProfile(c.Request().Context(), params)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"success": true, "authToken": authToken})
		case errors.Is(err, model.ErrorUserNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Can't find user!"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
}

// CurrentUser returns the caller's own record, located through the session
// claims. The password hash and role never leave the server (json:"-").
func CurrentUser(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := Identity(c)
		if identity == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "No token, authorization denied"})
		}

		user, err := accountService.Fetch(c.Request().Context(), identity.Email)
		if err != nil {
			if errors.Is(err, model.ErrorUserNotFound) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Can't find user!"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func UsernameAvailable(accountService AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.QueryParam("username")
		isValid, err := accountService.UsernameAvailable(c.Request().Context(), username)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"isValid": isValid})
	}
}
