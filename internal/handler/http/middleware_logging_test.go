package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_PassesThroughResponse(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/display", nil)
	rr := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}
