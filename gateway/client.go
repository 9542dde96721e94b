// Package gateway implements the client side of the IHE transaction profiles
// required for "Mobile access to Health Documents" (MHD) against a Mobile
// Access Gateway (MAG): PIXm, PDQm, PMIR and the MHD document transactions.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/i4mi/epd-gateway/lib/fhirutil"
	"github.com/i4mi/epd-gateway/lib/oid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

const DefaultTimeout = 20 * time.Second

// Config holds the immutable environment of a gateway client. It is treated
// as read-only after construction.
type Config struct {
	// FHIRContentType is sent as Content-Type header on every request and
	// specifies the FHIR version, e.g. "application/fhir+json; fhirVersion=4.0".
	FHIRContentType string
	// BaseURL is the base URL of the gateway's FHIR endpoint, including a
	// trailing slash. Relative endpoints are appended to it; absolute
	// endpoints are used verbatim.
	BaseURL string
	// MessageEndpoint is the endpoint processing FHIR messages for the
	// patient identity feed (usually "$process-message").
	MessageEndpoint string
	// Timeout bounds every HTTP call, including follow-up page fetches.
	// Zero means DefaultTimeout.
	Timeout time.Duration
	// SourceEndpoint is embedded in MessageHeader.source of identity feed messages.
	SourceEndpoint string
	// TargetEndpoint is embedded in MessageHeader.destination of identity feed messages.
	TargetEndpoint string
}

// Client performs FHIR interactions against a Mobile Access Gateway. It holds
// no mutable state; concurrent transactions are independent.
type Client struct {
	config     Config
	oids       oid.Registry
	httpClient *http.Client
}

// New creates a gateway client for the given environment and OID registry.
func New(config Config, oids oid.Registry, options ...func(*Client)) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	client := &Client{
		config: config,
		oids:   oids,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithHTTPClient sets the HTTP client used for all transactions.
func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Oids returns the OID registry the client was constructed with.
func (c *Client) Oids() oid.Registry {
	return c.oids
}

// fetch performs a gateway transaction and returns the response as a raw FHIR
// resource. Search result bundles that declare more matches than the response
// carries are completed by following the server's "next" links page by page,
// so callers always see a single result set (or the largest partial set the
// server's pagination metadata allows).
func (c *Client) fetch(ctx context.Context, endpoint string, method string, params url.Values, payload any, headers map[string]string) (json.RawMessage, error) {
	body, err := c.doRequest(ctx, endpoint, method, params, payload, headers)
	if err != nil {
		return nil, err
	}
	resourceType, err := fhirutil.ResourceType(body)
	if err != nil {
		return nil, &InvalidResponseError{Message: "response is not a FHIR resource: " + err.Error()}
	}
	if resourceType != "Bundle" {
		return body, nil
	}
	bundle, err := fhirutil.Decode[fhir.Bundle](body)
	if err != nil {
		return nil, &InvalidResponseError{Message: "failed to decode Bundle response: " + err.Error()}
	}
	if bundle.Total == nil || len(bundle.Entry) >= *bundle.Total {
		return body, nil
	}
	stitched, err := c.stitchPages(ctx, &bundle, headers)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(stitched)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal stitched bundle")
	}
	return data, nil
}

// stitchPages follows "next" links until the accumulated entries cover the
// declared total, or the server stops providing a next link (in which case
// the partial result is returned without error). The declared total of the
// first page is kept; pages of one search declare the same total. Pages are
// fetched strictly sequentially, the server determines cursor placement.
func (c *Client) stitchPages(ctx context.Context, bundle *fhir.Bundle, headers map[string]string) (*fhir.Bundle, error) {
	for bundle.Total != nil && len(bundle.Entry) < *bundle.Total {
		next := fhirutil.NextLink(bundle)
		if next == nil {
			log.Debug().Msgf("Search result declares total=%d but carries %d entries and no next link, returning partial result", *bundle.Total, len(bundle.Entry))
			break
		}
		// The next-page URL already encodes the search parameters and cursor.
		body, err := c.doRequest(ctx, *next, http.MethodGet, nil, nil, headers)
		if err != nil {
			return nil, err
		}
		page, err := fhirutil.Decode[fhir.Bundle](body)
		if err != nil {
			return nil, &InvalidResponseError{Message: "failed to decode next result page: " + err.Error()}
		}
		if len(page.Entry) == 0 {
			// A page without entries cannot make progress towards the total.
			break
		}
		bundle.Entry = append(bundle.Entry, page.Entry...)
		bundle.Link = page.Link
	}
	return bundle, nil
}

// doRequest performs a single HTTP call and returns the response body.
func (c *Client) doRequest(ctx context.Context, endpoint string, method string, params url.Values, payload any, headers map[string]string) ([]byte, error) {
	requestURL := endpoint
	if !strings.HasPrefix(endpoint, "http") {
		requestURL = c.config.BaseURL + endpoint
	}
	if len(params) > 0 {
		separator := "?"
		if strings.Contains(requestURL, "?") {
			separator = "&"
		}
		requestURL += separator + params.Encode()
	}

	var requestBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request payload")
		}
		requestBody = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	request.Header.Set("Content-Type", c.config.FHIRContentType)
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Seconds: c.config.Timeout.Seconds()}
		}
		log.Debug().Err(err).Msgf("Error when fetching from endpoint %s", endpoint)
		return nil, &TransportError{Cause: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Seconds: c.config.Timeout.Seconds()}
		}
		return nil, &TransportError{Cause: err}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Debug().Msgf("Non-2xx status code from gateway (%s %s, status=%d), content: %s", method, requestURL, response.StatusCode, string(body))
		return nil, &StatusError{StatusCode: response.StatusCode, Reason: http.StatusText(response.StatusCode)}
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
