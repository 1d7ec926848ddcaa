package service

import (
	"github.com/matu-sky/qrcode1/internal/config"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/store"
)

type Services struct {
	AuthService AuthService
	MenuService MenuService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		MenuService: NewMenuService(storages.MenuRepository, logger),
	}
}
