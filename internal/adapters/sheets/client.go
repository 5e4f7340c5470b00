// Package sheets fetches spreadsheet ranges through the Google Sheets
// values API using a service account. It is the only place the service
// touches the network; the normalization core never sees a failed or
// partial fetch, only whole tables.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/oauth2/google"

	"github.com/seaborne/quarterdeck/internal/domain/sheet"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"
	defaultTimeout = 30 * time.Second

	// Read-only scope; the dashboard never writes back to the sheet.
	scope = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// Client fetches value ranges from one spreadsheet.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	spreadsheetID   string
	credentialsFile string
	timeout         time.Duration
}

// New builds a Client for the given spreadsheet. When a credentials file
// is configured, the HTTP client is authenticated with a service-account
// JWT; otherwise the provided (or default) client is used as-is, which
// tests rely on.
func New(ctx context.Context, spreadsheetID string, opts ...Option) (*Client, error) {
	if spreadsheetID == "" {
		return nil, ErrNoSpreadsheet
	}
	c := &Client{
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		timeout:       defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if c.credentialsFile == "" {
			return nil, ErrNoCredentials
		}
		key, err := os.ReadFile(c.credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoCredentials, err)
		}
		jwtCfg, err := google.JWTConfigFromJSON(key, scope)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoCredentials, err)
		}
		c.httpClient = jwtCfg.Client(ctx)
	}
	c.httpClient.Timeout = c.timeout
	return c, nil
}

// valueRange mirrors the values-API response body.
type valueRange struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

// FetchTable retrieves a range in A1 notation and returns it as a raw
// table: first row as headers, remaining rows as data. An empty range is
// an error here so the caller can withhold the table from the core.
func (c *Client) FetchTable(ctx context.Context, readRange string) (sheet.RawTable, error) {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(c.spreadsheetID), url.PathEscape(readRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return sheet.RawTable{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sheet.RawTable{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sheet.RawTable{}, fmt.Errorf("%w: status %d for range %q", ErrFetch, resp.StatusCode, readRange)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return sheet.RawTable{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if len(vr.Values) == 0 {
		return sheet.RawTable{}, fmt.Errorf("%w: range %q", ErrNoData, readRange)
	}

	t := sheet.RawTable{
		Headers: cellStrings(vr.Values[0]),
		Rows:    make([][]string, 0, len(vr.Values)-1),
	}
	for _, row := range vr.Values[1:] {
		t.Rows = append(t.Rows, cellStrings(row))
	}
	return t, nil
}

// cellStrings renders one API row as strings. With the default formatted
// rendering every cell arrives as a string already; the numeric and bool
// arms cover unformatted responses.
func cellStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case string:
			out[i] = val
		case float64:
			out[i] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(val)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(val)
		}
	}
	return out
}
