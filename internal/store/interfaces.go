package store

import (
	"context"

	"github.com/matu-sky/qrcode1/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// MenuRepository persists menu documents. Mutating operations are scoped to
// the owning user: updates and deletes of another user's record fail with
// [ErrNotMenuOwner] rather than silently doing nothing.
type MenuRepository interface {
	CreateMenu(ctx context.Context, ownerID int64, document models.MenuDocument) (models.MenuRecord, error)
	UpdateMenu(ctx context.Context, ownerID int64, recordID string, document models.MenuDocument) (models.MenuRecord, error)
	GetMenuByID(ctx context.Context, recordID string) (models.MenuRecord, error)
	ListMenusByOwner(ctx context.Context, ownerID int64) ([]models.MenuSummary, error)
	DeleteMenu(ctx context.Context, ownerID int64, recordID string) error
}

// LocalStateStorage is the client-side persistence surface: a cached session
// token plus locally edited menu drafts that survive restarts of the
// terminal client.
type LocalStateStorage interface {
	SaveSession(userID int64, token string) error
	Session() (models.LocalSession, error)
	ClearSession() error

	SaveDraft(key string, document models.MenuDocument) error
	Draft(key string) (models.MenuDocument, bool)
	Drafts() map[string]models.MenuDocument
	DeleteDraft(key string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
