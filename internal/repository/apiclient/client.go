// Package apiclient implements the domain repository ports on top of the
// upstream invoicing REST API, which owns all persistence. Wire payloads
// use the upstream field names (invoice_number, is_final, is_saved_final,
// tax_rate, unit_cost, total_gst); nothing outside this package sees them.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/billcraft/billcraft/internal/config"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/httpclient"
	"github.com/billcraft/billcraft/internal/logger"
)

const dateLayout = "2006-01-02"

// restClient is the shared transport for all upstream repositories.
type restClient struct {
	http    httpclient.Client
	baseURL string
	apiKey  string
	logger  *logger.Logger
}

func newClient(cfg *config.Configuration, http httpclient.Client, logger *logger.Logger) *restClient {
	return &restClient{
		http:    http,
		baseURL: cfg.Upstream.BaseURL,
		apiKey:  cfg.Upstream.APIKey,
		logger:  logger,
	}
}

func (c *restClient) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

func (c *restClient) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		h["Authorization"] = "Bearer " + c.apiKey
	}
	return h
}

// do sends a request and decodes the JSON response into out when out is
// non-nil. Upstream 404s surface as ErrNotFound so callers can match them
// without knowing about HTTP.
func (c *restClient) do(ctx context.Context, method, url string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to encode upstream request").
				Mark(ierr.ErrSystem)
		}
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method:  method,
		URL:     url,
		Headers: c.headers(),
		Body:    payload,
	})
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok && httpErr.StatusCode == http.StatusNotFound {
			return ierr.WithError(err).
				WithHint("Resource not found upstream").
				Mark(ierr.ErrNotFound)
		}
		return err
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to decode upstream response").
				Mark(ierr.ErrHTTPClient)
		}
	}
	return nil
}
