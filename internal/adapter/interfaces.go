// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

// Package adapter provides transport-layer abstractions for communicating
// with the QR generator server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/matu-sky/qrcode1/models"
)

// SavedMenu is a stored menu record as returned by the server, together
// with the display link a QR code for this record would carry.
type SavedMenu struct {
	models.MenuRecord
	Link string `json:"link"`
}

// ServerAdapter defines transport-agnostic communication with the QR
// generator server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after
	// a successful Register or Login, and may be called directly to resume
	// a cached session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the parsed session token. Returns [ErrConflict] (wrapped) if the
	// email is already taken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken and returns the parsed session token.
	// Returns [ErrUnauthorized] (wrapped) on invalid credentials.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateMenu saves a new menu document and returns the stored record
	// with its display link. Requires a valid bearer token. Returns
	// [ErrUnprocessable] (wrapped) when the document has no usable content.
	CreateMenu(ctx context.Context, document models.MenuDocument) (SavedMenu, error)

	// UpdateMenu replaces the document of an existing record. The record
	// ID and the link stay stable across updates. Requires a valid bearer
	// token. Returns [ErrNotFound] or [ErrForbidden] (wrapped) when the
	// record is missing or owned by another account.
	UpdateMenu(ctx context.Context, recordID string, document models.MenuDocument) (SavedMenu, error)

	// GetMenu fetches a single stored record by ID.
	GetMenu(ctx context.Context, recordID string) (SavedMenu, error)

	// ListMenus fetches the list-page projection of all records owned by
	// the authenticated account, most recently updated first.
	ListMenus(ctx context.Context) ([]models.MenuSummary, error)

	// DeleteMenu removes a stored record. Requires a valid bearer token.
	DeleteMenu(ctx context.Context, recordID string) error

	// FetchQR renders the given payload as a QR code PNG on the server and
	// returns the raw image bytes. size is the image edge length in pixels;
	// zero picks the server default.
	FetchQR(ctx context.Context, data string, size int) ([]byte, error)

	// Version reports the server build version string.
	Version(ctx context.Context) (string, error)
}
