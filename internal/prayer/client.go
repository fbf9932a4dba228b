package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches daily prayer timings from an Aladhan-compatible API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a prayer times API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// aladhanResponse mirrors the upstream payload; only the fields we read
type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Sunrise string `json:"Sunrise"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

// TimingsByCity fetches the timings for a city on a given date (DD-MM-YYYY)
func (c *Client) TimingsByCity(ctx context.Context, city, country, date string) (*Timings, error) {
	endpoint := fmt.Sprintf("%s/timingsByCity/%s?city=%s&country=%s",
		c.baseURL, url.PathEscape(date), url.QueryEscape(city), url.QueryEscape(country))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build timings request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timings API returned status %d", resp.StatusCode)
	}

	var payload aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode timings response: %w", err)
	}
	if payload.Code != http.StatusOK {
		return nil, fmt.Errorf("timings API returned code %d", payload.Code)
	}

	return &Timings{
		Fajr:    payload.Data.Timings.Fajr,
		Sunrise: payload.Data.Timings.Sunrise,
		Dhuhr:   payload.Data.Timings.Dhuhr,
		Asr:     payload.Data.Timings.Asr,
		Maghrib: payload.Data.Timings.Maghrib,
		Isha:    payload.Data.Timings.Isha,
	}, nil
}
