package store

import "github.com/matu-sky/qrcode1/internal/logger"

// Storages bundles the server-side repositories behind a single construction
// point so the service layer receives one dependency instead of several.
type Storages struct {
	UserRepository UserRepository
	MenuRepository MenuRepository
}

// NewStorages wires the PostgreSQL repositories to the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		MenuRepository: NewMenuRepository(db, log),
	}
}
