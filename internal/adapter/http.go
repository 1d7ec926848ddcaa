package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/matu-sky/qrcode1/internal/config"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/utils"
	"github.com/matu-sky/qrcode1/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account credentials to
// POST /api/user/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken. Returns an
// error if the request fails, the server returns a non-2xx status, or the
// token cannot be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.acceptToken(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.acceptToken(resp)
}

// CreateMenu implements [ServerAdapter]. It POSTs the menu document to
// POST /api/menus and decodes the stored record with its display link.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateMenu(ctx context.Context, document models.MenuDocument) (SavedMenu, error) {
	var saved SavedMenu

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		Post("/api/menus")
	if err != nil {
		return SavedMenu{}, fmt.Errorf("create menu request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SavedMenu{}, err
	}

	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return SavedMenu{}, fmt.Errorf("decode create menu response: %w", err)
	}

	return saved, nil
}

// UpdateMenu implements [ServerAdapter]. It PUTs the replacement document to
// PUT /api/menus/{id}. The record keeps its ID, so links printed on existing
// QR codes stay valid. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateMenu(ctx context.Context, recordID string, document models.MenuDocument) (SavedMenu, error) {
	var saved SavedMenu

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		Put("/api/menus/" + url.PathEscape(recordID))
	if err != nil {
		return SavedMenu{}, fmt.Errorf("update menu request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SavedMenu{}, err
	}

	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return SavedMenu{}, fmt.Errorf("decode update menu response: %w", err)
	}

	return saved, nil
}

// GetMenu implements [ServerAdapter]. It GETs a single stored record from
// GET /api/menus/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) GetMenu(ctx context.Context, recordID string) (SavedMenu, error) {
	var saved SavedMenu

	resp, err := h.authedRequest(ctx).
		Get("/api/menus/" + url.PathEscape(recordID))
	if err != nil {
		return SavedMenu{}, fmt.Errorf("get menu request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SavedMenu{}, err
	}

	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return SavedMenu{}, fmt.Errorf("decode get menu response: %w", err)
	}

	return saved, nil
}

// ListMenus implements [ServerAdapter]. It GETs the owner's saved menus
// from GET /api/menus. Requires a valid bearer token.
func (h *httpServerAdapter) ListMenus(ctx context.Context) ([]models.MenuSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/menus")
	if err != nil {
		return nil, fmt.Errorf("list menus request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var summaries []models.MenuSummary
	if err = json.Unmarshal(resp.Body(), &summaries); err != nil {
		return nil, fmt.Errorf("decode list menus response: %w", err)
	}

	return summaries, nil
}

// DeleteMenu implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/menus/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteMenu(ctx context.Context, recordID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/menus/" + url.PathEscape(recordID))
	if err != nil {
		return fmt.Errorf("delete menu request: %w", err)
	}

	return mapHTTPError(resp)
}

// FetchQR implements [ServerAdapter]. It GETs the rendered PNG from
// GET /api/qr. No token is required; the endpoint is public.
func (h *httpServerAdapter) FetchQR(ctx context.Context, data string, size int) ([]byte, error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("data", data)
	if size > 0 {
		req.SetQueryParam("size", strconv.Itoa(size))
	}

	resp, err := req.Get("/api/qr")
	if err != nil {
		return nil, fmt.Errorf("fetch qr request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Version implements [ServerAdapter]. It GETs the server build version
// string from GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// acceptToken extracts the bearer token from the Authorization response
// header, resolves the acting user from its "sub" claim, and stores the
// token for subsequent requests.
func (h *httpServerAdapter) acceptToken(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
