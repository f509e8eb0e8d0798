package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/ddubrovin/tax-intake-client/internal/config"
	"github.com/ddubrovin/tax-intake-client/internal/logger"
	"github.com/ddubrovin/tax-intake-client/internal/utils"
	"github.com/ddubrovin/tax-intake-client/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// portalCfg.Address and configures the underlying HTTP client with the
// resolved base URL and request timeout. The bearer token from the config, if
// any, is stored via SetToken.
//
// Returns an error if portalCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPPortalAdapter(portalCfg config.ClientPortal, logger *logger.Logger) (PortalAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(portalCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(portalCfg.RequestTimeout)

	a := &httpPortalAdapter{client: client, logger: logger}
	a.SetToken(portalCfg.Token)

	return a, nil
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

// SetToken implements [PortalAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpPortalAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [PortalAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpPortalAdapter) Token() string {
	return h.token
}

// GetMe implements [PortalAdapter]. It GETs /api/profile/me and decodes the
// response into a [models.ServerProfile]. The profile carries only masked
// display strings for sensitive identifiers.
func (h *httpPortalAdapter) GetMe(ctx context.Context) (models.ServerProfile, error) {
	var profile models.ServerProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile/me")
	if err != nil {
		return models.ServerProfile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerProfile{}, err
	}

	return profile, nil
}

// GetDecryptedSSN implements [PortalAdapter]. It GETs /api/profile/ssn, which
// decrypts the stored SSN/ITIN server-side and returns it as plaintext. The
// caller must hold the value only transiently in memory.
func (h *httpPortalAdapter) GetDecryptedSSN(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profile/ssn")
	if err != nil {
		return "", fmt.Errorf("decrypt ssn request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body struct {
		SSN string `json:"ssn"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode ssn response: %w", err)
	}

	return body.SSN, nil
}

// GetDecryptedDriverLicense implements [PortalAdapter]. It GETs
// /api/profile/driver-license and decodes the full decrypted document. The
// server cannot decrypt the number without also returning its companions, so
// the document arrives whole or not at all.
func (h *httpPortalAdapter) GetDecryptedDriverLicense(ctx context.Context) (models.DriverLicense, error) {
	var license models.DriverLicense

	resp, err := h.authedRequest(ctx).
		SetResult(&license).
		Get("/api/profile/driver-license")
	if err != nil {
		return models.DriverLicense{}, fmt.Errorf("decrypt driver license request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DriverLicense{}, err
	}

	return license, nil
}

// GetDecryptedPassport implements [PortalAdapter]. It GETs
// /api/profile/passport and decodes the full decrypted document.
func (h *httpPortalAdapter) GetDecryptedPassport(ctx context.Context) (models.Passport, error) {
	var passport models.Passport

	resp, err := h.authedRequest(ctx).
		SetResult(&passport).
		Get("/api/profile/passport")
	if err != nil {
		return models.Passport{}, fmt.Errorf("decrypt passport request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Passport{}, err
	}

	return passport, nil
}

// UpdateProfile implements [PortalAdapter]. It PATCHes the minimal-diff
// payload to /api/profile/me; keys absent from the payload stay unchanged
// server-side. Returns the fresh post-save profile. Returns [ErrConflict]
// (wrapped) if the server detects a concurrent modification.
func (h *httpPortalAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.ServerProfile, error) {
	var profile models.ServerProfile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&profile).
		Patch("/api/profile/me")
	if err != nil {
		return models.ServerProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerProfile{}, err
	}

	return profile, nil
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
