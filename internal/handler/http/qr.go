package http

import (
	"net/http"
	"strconv"

	"github.com/matu-sky/qrcode1/internal/logger"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// qrImage renders the given payload as a QR code PNG.
//
// Query parameters:
//   - data — the payload to encode; required.
//   - size — image edge length in pixels; optional, clamped to [64, 1024].
func (h *Handler) qrImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data := r.URL.Query().Get("data")
	if data == "" {
		http.Error(w, "data parameter is required", http.StatusBadRequest)
		return
	}

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid size parameter", http.StatusBadRequest)
			return
		}
		size = parsed
	}
	if size < minQRSize {
		size = minQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		log.Err(err).Msg("qr code encoding failed")
		http.Error(w, "payload cannot be encoded as a QR code", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
