// Package session keeps the server-side half of admin sessions.
//
// Sessions have a fixed absolute lifetime and are evicted by the store once
// it passes. The in-process store loses every session on restart; use the
// Redis store when sessions must survive one.
package session

import (
	"context"
	"errors"

	"parth-agrotech/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser drops every session of the given user.
	DeleteByUser(ctx context.Context, userID string) error
}
