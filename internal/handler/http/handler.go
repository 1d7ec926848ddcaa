package http

import (
	"embed"
	"html/template"

	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/service"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type Handler struct {
	services *service.Services
	encoder  *qrpayload.Encoder
	version  string

	displayTmpl *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, encoder *qrpayload.Encoder, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		encoder:     encoder,
		version:     version,
		displayTmpl: template.Must(template.ParseFS(templateFS, "templates/*.gohtml")),
		logger:      logger,
	}
}
