package adlibclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	adlibdomain "github.com/mosaicwellness/ad-warroom-api/infrastructure/integrator/adlibrary/domain"
)

const searchFields = "id,page_id,page_name,ad_creation_time,ad_creative_bodies," +
	"ad_creative_link_titles,ad_creative_link_descriptions,ad_delivery_start_time," +
	"ad_delivery_stop_time,ad_snapshot_url,publisher_platforms,languages,spend,impressions"

// SearchAds fetches one page of the ads_archive for a search term. Pass the
// previous page's "after" cursor to continue, or empty for the first page.
func (c *AdLibraryClient) SearchAds(ctx context.Context, searchTerm string, after string) (*adlibdomain.SearchResponse, error) {
	params := url.Values{}
	params.Add("search_terms", searchTerm)
	params.Add("ad_reached_countries", fmt.Sprintf("['%s']", c.Cfg.AdLibrary.Country))
	params.Add("ad_active_status", "ALL")
	params.Add("fields", searchFields)
	params.Add("limit", strconv.Itoa(c.Cfg.AdLibrary.PageLimit))
	if c.Cfg.Fetch.DaysBack > 0 {
		minDate := time.Now().UTC().AddDate(0, 0, -c.Cfg.Fetch.DaysBack).Format("2006-01-02")
		params.Add("ad_delivery_date_min", minDate)
	}
	params.Add("access_token", c.Cfg.AdLibrary.AccessToken)
	if after != "" {
		params.Add("after", after)
	}

	endpoint := fmt.Sprintf("%s/ads_archive?%s", c.Cfg.AdLibrary.URL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("adlibrary: failed to build request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("adlibrary: request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status":      resp.Status,
			"search_term": searchTerm,
		}).Error("adlibrary: non-200 response")
		return nil, fmt.Errorf("ads_archive returned status %s", resp.Status)
	}

	var response adlibdomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("adlibrary: failed to decode JSON")
		return nil, err
	}

	return &response, nil
}
