package adlibclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicwellness/ad-warroom-api/internal/config"
)

type Client interface {
	SearchAds(ctx context.Context, searchTerm string, after string) (*adlibdomain.SearchResponse, error)
	ValidateToken(ctx context.Context) error
}

type AdLibraryClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateToken makes a cheap /me call so an expired token is caught before
// a multi-page fetch starts.
func (c *AdLibraryClient) ValidateToken(ctx context.Context) error {
	params := url.Values{}
	params.Add("access_token", c.Cfg.AdLibrary.AccessToken)

	endpoint := fmt.Sprintf("%s/me?%s", c.Cfg.AdLibrary.URL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("token validation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("access token rejected with status %s", resp.Status)
	}

	return nil
}
