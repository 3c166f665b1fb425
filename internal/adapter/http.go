package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/xagcl/internal/config"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/utils"
	"github.com/MKhiriev/xagcl/models"
	"github.com/go-resty/resty/v2"
)

const (
	stockPath    = "/api/stock"
	generatePath = "/api/generate"

	// TokenHeader carries the api-token on generation requests.
	TokenHeader = "api-token"
)

type httpXagAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPXagAdapter constructs an HTTP/REST implementation of [XagAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A zero timeout leaves requests unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPXagAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (XagAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpXagAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [XagAdapter]. The token is stored verbatim.
func (h *httpXagAdapter) SetToken(token string) {
	h.token = token
}

// FetchStock implements [XagAdapter]. It GETs /api/stock without
// authentication.
func (h *httpXagAdapter) FetchStock(ctx context.Context) (models.StockSnapshot, error) {
	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		Get(stockPath)
	if err != nil {
		return models.StockSnapshot{}, fmt.Errorf("%w: stock request: %w", ErrNetwork, err)
	}
	h.logResponse(resp, started)

	if err = mapHTTPError(resp); err != nil {
		return models.StockSnapshot{}, fmt.Errorf("stock request: %w", err)
	}

	return decodeStock(resp.Body())
}

// GenerateAccount implements [XagAdapter]. It POSTs
// /api/generate?type=<type>&test_mode=<bool> with the api-token header.
func (h *httpXagAdapter) GenerateAccount(ctx context.Context, selection models.Selection) (models.GenerationResult, error) {
	if h.token == "" {
		return models.GenerationResult{}, ErrTokenNotSet
	}

	started := time.Now()
	resp, err := h.authedRequest(ctx).
		SetQueryParam("type", selection.Type.String()).
		SetQueryParam("test_mode", strconv.FormatBool(selection.TestMode)).
		Post(generatePath)
	if err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w: generate request: %w", ErrNetwork, err)
	}
	h.logResponse(resp, started)

	statusErr := mapHTTPError(resp)
	if statusErr != nil {
		statusErr = fmt.Errorf("generate request: %w", statusErr)
	}

	return classifyGenerate(resp.Body(), statusErr, selection)
}

func (h *httpXagAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(TokenHeader, h.token)
}

func (h *httpXagAdapter) logResponse(resp *resty.Response, started time.Time) {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started)).
		Msg("xag api response")
}
