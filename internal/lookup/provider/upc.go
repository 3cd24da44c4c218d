package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avast/retry-go/v4"
	"github.com/smallbiznis/snackcat/internal/config"
	"github.com/smallbiznis/snackcat/internal/lookup/domain"
	"go.uber.org/zap"
)

// UPC looks up product codes against an external HTTP API. Transport
// failures and non-2xx responses surface as ErrUnavailable so the
// entry workflow stays usable without enrichment.
type UPC struct {
	baseURL string
	apiKey  string
	retries uint
	client  *http.Client
	log     *zap.Logger
}

func NewUPC(cfg config.LookupConfig, log *zap.Logger) *UPC {
	return &UPC{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		retries: cfg.Retries,
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log.Named("lookup.upc"),
	}
}

type upcResponse struct {
	Found    bool   `json:"found"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Flavor   string `json:"flavor"`
	Size     string `json:"size"`
	ImageURL string `json:"imageUrl"`
}

func (p *UPC) Lookup(ctx context.Context, code string) (*domain.Result, error) {
	var payload upcResponse

	err := retry.Do(
		func() error {
			return p.fetch(ctx, code, &payload)
		},
		retry.Context(ctx),
		retry.Attempts(p.retries+1),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		p.log.Warn("upc lookup failed", zap.String("code", code), zap.Error(err))
		return nil, domain.ErrUnavailable
	}

	return &domain.Result{
		Found:    payload.Found,
		Name:     payload.Name,
		Brand:    payload.Brand,
		Flavor:   payload.Flavor,
		Size:     payload.Size,
		ImageURL: payload.ImageURL,
	}, nil
}

func (p *UPC) fetch(ctx context.Context, code string, out *upcResponse) error {
	endpoint := fmt.Sprintf("%s/lookup?upc=%s", p.baseURL, url.QueryEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Some providers signal "unknown code" with a 404 instead of
		// found=false; treat both the same.
		*out = upcResponse{Found: false}
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
