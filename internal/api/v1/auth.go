package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/auth"
	"github.com/rentfolio/rentfolio/internal/domain"
)

type RegisterInput struct {
	Body struct {
		Email           string `json:"email" minLength:"3" maxLength:"255" doc:"Account email"`
		Password        string `json:"password" minLength:"1" maxLength:"128" doc:"Password"`         //nolint:gosec // G117: login credential DTO
		ConfirmPassword string `json:"confirm_password" minLength:"1" doc:"Password confirmation"`    //nolint:gosec // G117: login credential DTO
		Name            string `json:"name,omitempty" maxLength:"255" doc:"Display name"`
		Role            string `json:"role" enum:"owner,tenant" doc:"Account role"`
	}
}

type RegisterOutput struct {
	Body struct {
		User         *domain.User `json:"user"`
		AccessToken  string       `json:"access_token"`  //nolint:gosec // G117: auth response DTO
		RefreshToken string       `json:"refresh_token"` //nolint:gosec // G117: auth response DTO
	}
}

type LoginInput struct {
	Body struct {
		Email    string `json:"email" minLength:"3" maxLength:"255" doc:"Account email"`
		Password string `json:"password" minLength:"1" maxLength:"128" doc:"Password"` //nolint:gosec // G117: login credential DTO
	}
}

type LoginOutput struct {
	Body struct {
		User         *domain.User `json:"user"`
		AccessToken  string       `json:"access_token"`  //nolint:gosec // G117: auth response DTO
		RefreshToken string       `json:"refresh_token"` //nolint:gosec // G117: auth response DTO
	}
}

type RefreshInput struct {
	Body struct {
		RefreshToken string `json:"refresh_token" minLength:"1" doc:"Refresh token"` //nolint:gosec // G117: token refresh DTO
	}
}

type RefreshOutput struct {
	Body struct {
		AccessToken string `json:"access_token"` //nolint:gosec // G117: auth response DTO
	}
}

type LogoutInput struct {
	Body struct {
		RefreshToken string `json:"refresh_token" minLength:"1" doc:"Refresh token to revoke"` //nolint:gosec // G117: token revoke DTO
	}
}

func RegisterAuthRoutes(api huma.API, authSvc AuthService) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Summary:     "Register a new account",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		_, err := authSvc.Register(ctx, input.Body.Email, input.Body.Password, input.Body.ConfirmPassword, input.Body.Name, input.Body.Role)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrPasswordTooShort):
				return nil, huma.Error422UnprocessableEntity("password must be at least 6 characters")
			case errors.Is(err, auth.ErrPasswordMismatch):
				return nil, huma.Error422UnprocessableEntity("passwords do not match")
			case errors.Is(err, auth.ErrUserAlreadyExists):
				return nil, huma.Error409Conflict("an account with this email already exists")
			case errors.Is(err, auth.ErrTenantNotRegistered):
				return nil, huma.Error403Forbidden("this email is not registered by a landlord; please contact your landlord")
			default:
				return nil, huma.Error500InternalServerError("failed to register account", err)
			}
		}

		accessToken, refreshToken, user, err := authSvc.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			return nil, huma.Error500InternalServerError("registered but failed to issue tokens", err)
		}

		out := &RegisterOutput{}
		out.Body.User = user
		out.Body.AccessToken = accessToken
		out.Body.RefreshToken = refreshToken
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Login with email and password",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		accessToken, refreshToken, user, err := authSvc.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidCredentials):
				return nil, huma.Error401Unauthorized("invalid email or password")
			case errors.Is(err, auth.ErrTenantNotRegistered):
				return nil, huma.Error403Forbidden("this email is not registered by a landlord; please contact your landlord")
			default:
				return nil, huma.Error500InternalServerError("login failed", err)
			}
		}

		out := &LoginOutput{}
		out.Body.User = user
		out.Body.AccessToken = accessToken
		out.Body.RefreshToken = refreshToken
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Refresh access token",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
		accessToken, err := authSvc.Refresh(ctx, input.Body.RefreshToken)
		if err != nil {
			return nil, huma.Error401Unauthorized("invalid or expired refresh token")
		}

		out := &RefreshOutput{}
		out.Body.AccessToken = accessToken
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/auth/logout",
		Summary:     "Revoke a refresh session",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LogoutInput) (*struct{}, error) {
		if err := authSvc.Logout(ctx, input.Body.RefreshToken); err != nil {
			return nil, huma.Error401Unauthorized("invalid refresh token")
		}
		return nil, nil
	})
}
