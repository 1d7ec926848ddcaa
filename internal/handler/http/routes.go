package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization. Record lookup by id stays public: a
	// printed QR link must resolve for anonymous scanners, same as /display.
	router.Group(func(r chi.Router) {
		r.Get("/display", h.display)
		r.Get("/display.vcf", h.displayVCard)
		r.Get("/api/qr", h.qrImage)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/menus/{menuID}", h.getMenu)
	})

	// menu record mutations and the owner list require a token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/menus", h.createMenu)
		r.Get("/api/menus", h.listMenus)
		r.Put("/api/menus/{menuID}", h.updateMenu)
		r.Delete("/api/menus/{menuID}", h.deleteMenu)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
