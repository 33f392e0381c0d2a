package domain

import "time"

const SessionCookieName = "pa_session"

var (
	ErrUnknownUser          = NewError(ErrUnauthorized, "unknown user")
	ErrInvalidCredential    = NewError(ErrUnauthorized, "invalid credentials")
	ErrUnauthenticated      = NewError(ErrUnauthorized, "not authenticated")
	ErrForbidden            = NewError(ErrUnauthorized, "admin access required")
	ErrAdminAlreadyExists   = NewError(ErrBadRequest, "an admin user already exists")
	ErrUsernameTaken        = NewError(ErrConflict, "username already taken")
	ErrUserNotFound         = NewError(ErrNotFound, "user not found")
	ErrCannotDeleteYourself = NewError(ErrConflict, "you cannot delete your own account")

	ErrTokenInvalid = NewError(ErrUnauthorized, "session token invalid")
	ErrTokenExpired = NewError(ErrUnauthorized, "session token expired")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	SetupRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}

	LoginResponse struct {
		SessionToken string       `json:"-"`
		ExpiresAt    time.Time    `json:"-"`
		User         UserResponse `json:"user"`
	}

	// Session is the server-side record behind a session token.
	Session struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		Username  string    `json:"username"`
		Role      string    `json:"role"`
		IssuedAt  time.Time `json:"issuedAt"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
)
