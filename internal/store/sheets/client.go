// Package sheets implements the row store over a remote spreadsheet values API.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/madnessDann/portal-precios/internal/errs"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// TokenProvider supplies a valid bearer credential for each request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client issues generic row operations against the named ranges of one
// spreadsheet. It has no knowledge of the domain collections.
type Client struct {
	spreadsheetID string
	baseURL       string
	tokens        TokenProvider
	httpc         *http.Client
}

// NewClient creates a values client for the given spreadsheet.
func NewClient(spreadsheetID string, tokens TokenProvider) *Client {
	return &Client{
		spreadsheetID: spreadsheetID,
		baseURL:       defaultBaseURL,
		tokens:        tokens,
		httpc:         &http.Client{Timeout: 10 * time.Second},
	}
}

// ReadAll fetches every row of the named collection, header row included.
// A range with no values yields an empty slice.
func (c *Client) ReadAll(ctx context.Context, collection string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.baseURL, c.spreadsheetID, url.PathEscape(collection))

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, storeFail(collection, resp)
	}

	var body struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &errs.StoreError{Collection: collection, Detail: "decode values: " + err.Error()}
	}
	if body.Values == nil {
		return [][]string{}, nil
	}
	return body.Values, nil
}

// Append adds rows after the collection's existing content; the store
// assigns the final row positions and keeps the given order.
func (c *Client) Append(ctx context.Context, collection string, rows [][]string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(collection))

	resp, err := c.do(ctx, http.MethodPost, endpoint, rows)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return storeFail(collection, resp)
	}
	return nil
}

// WriteRows overwrites whole rows starting at the given 1-based sheet row.
// The A1 address is derived from the row width, so all columns are always
// written back.
func (c *Client) WriteRows(ctx context.Context, collection string, start int, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	addr := fmt.Sprintf("A%d:%c%d", start, rune('A'+len(rows[0])-1), start+len(rows)-1)
	endpoint := fmt.Sprintf("%s/%s/values/%s!%s?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(collection), addr)

	resp, err := c.do(ctx, http.MethodPut, endpoint, rows)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return storeFail(collection, resp)
	}
	return nil
}

// do attaches the bearer credential and issues the request. A nil payload
// sends no body.
func (c *Client) do(ctx context.Context, method, endpoint string, payload [][]string) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(map[string][][]string{"values": payload})
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpc.Do(req)
}

// storeFail drains the response into a StoreError.
func storeFail(collection string, resp *http.Response) error {
	detail := resp.Status
	if body, _ := io.ReadAll(resp.Body); len(body) > 0 {
		detail = resp.Status + ": " + strings.TrimSpace(string(body))
	}
	return &errs.StoreError{Collection: collection, Detail: detail}
}
