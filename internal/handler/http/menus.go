package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/service"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/internal/utils"
	"github.com/matu-sky/qrcode1/models"
)

// menuResponse is a stored menu record extended with the display link that
// a QR code for this record would carry.
type menuResponse struct {
	models.MenuRecord
	Link string `json:"link"`
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var document models.MenuDocument
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.MenuService.CreateMenu(ctx, userID, document)
	if err != nil {
		h.writeMenuError(w, r, err, "menu creation failed")
		return
	}

	utils.WriteJSON(w, menuResponse{
		MenuRecord: record,
		Link:       h.encoder.BuildMenuLink(record.ID),
	}, http.StatusCreated)
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	summaries, err := h.services.MenuService.ListMenus(ctx, userID)
	if err != nil {
		h.writeMenuError(w, r, err, "menu listing failed")
		return
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	record, err := h.services.MenuService.GetMenu(ctx, chi.URLParam(r, "menuID"))
	if err != nil {
		h.writeMenuError(w, r, err, "menu lookup failed")
		return
	}

	utils.WriteJSON(w, menuResponse{
		MenuRecord: record,
		Link:       h.encoder.BuildMenuLink(record.ID),
	}, http.StatusOK)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var document models.MenuDocument
	if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.MenuService.UpdateMenu(ctx, userID, chi.URLParam(r, "menuID"), document)
	if err != nil {
		h.writeMenuError(w, r, err, "menu update failed")
		return
	}

	utils.WriteJSON(w, menuResponse{
		MenuRecord: record,
		Link:       h.encoder.BuildMenuLink(record.ID),
	}, http.StatusOK)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.MenuService.DeleteMenu(ctx, userID, chi.URLParam(r, "menuID")); err != nil {
		h.writeMenuError(w, r, err, "menu deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeMenuError maps menu service errors to HTTP status codes.
func (h *Handler) writeMenuError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrMenuNotEncodable):
		log.Err(err).Msg(msg)
		http.Error(w, "menu document is not encodable", http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrInvalidMenuID):
		log.Err(err).Msg(msg)
		http.Error(w, "invalid menu id", http.StatusBadRequest)
	case errors.Is(err, store.ErrMenuNotFound):
		log.Err(err).Msg(msg)
		http.Error(w, "menu not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNotMenuOwner):
		log.Err(err).Msg(msg)
		http.Error(w, "menu belongs to another user", http.StatusForbidden)
	default:
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
