package service

import (
	"context"

	"github.com/matu-sky/qrcode1/models"
)

// AuthService handles account registration, credential verification, and the
// JWT session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MenuService owns the menu record lifecycle. Every persistence path prunes
// the document first and rejects documents that end up empty, so that a
// record reachable through a generated link always renders something.
type MenuService interface {
	CreateMenu(ctx context.Context, ownerID int64, document models.MenuDocument) (models.MenuRecord, error)
	UpdateMenu(ctx context.Context, ownerID int64, recordID string, document models.MenuDocument) (models.MenuRecord, error)
	GetMenu(ctx context.Context, recordID string) (models.MenuRecord, error)
	ListMenus(ctx context.Context, ownerID int64) ([]models.MenuSummary, error)
	DeleteMenu(ctx context.Context, ownerID int64, recordID string) error
}
