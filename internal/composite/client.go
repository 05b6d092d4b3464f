// Package composite submits a batch of request graphs as a single composite
// graph REST call.
package composite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nochum/df23-data-loss-prevention/internal/auth"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// Response is the body of a successful composite graph call.
type Response struct {
	Graphs []GraphResult `json:"graphs"`
}

// GraphResult is the outcome of one request graph.
type GraphResult struct {
	GraphID       string        `json:"graphId"`
	IsSuccessful  bool          `json:"isSuccessful"`
	GraphResponse GraphResponse `json:"graphResponse"`
}

// GraphResponse holds the sub-responses of one graph.
type GraphResponse struct {
	CompositeResponse []SubResponse `json:"compositeResponse"`
}

// SubResponse is the result of one sub-request, correlated by ReferenceID.
type SubResponse struct {
	ReferenceID    string          `json:"referenceId"`
	HTTPStatusCode int             `json:"httpStatusCode"`
	Body           json.RawMessage `json:"body"`
}

// StatusError reports a non-200 response from the composite endpoint.
type StatusError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("composite graph call failed: %d %s", e.StatusCode, e.Reason)
}

// Client calls the composite graph endpoint of one instance.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	apiVersion string
	logger     *zap.Logger
}

// NewClient creates a composite client. A nil httpClient gets one with timeout.
func NewClient(httpClient *http.Client, session *auth.Session, apiVersion string, timeout time.Duration, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if apiVersion == "" {
		apiVersion = graph.DefaultAPIVersion
	}
	return &Client{
		httpClient: httpClient,
		session:    session,
		apiVersion: apiVersion,
		logger:     logger.With(zap.String("component", "composite")),
	}
}

// Endpoint is the URL the batch is posted to.
func (c *Client) Endpoint() string {
	return c.session.InstanceURL + "/services/data/" + c.apiVersion + "/composite/graph"
}

// Call submits req and returns the parsed response. Non-200 statuses are
// returned as *StatusError; failures are not retried.
func (c *Client) Call(ctx context.Context, req *graph.CompositeRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", errors.Wrap(err, "failed to encode request"))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.session.AccessToken)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", errors.Wrap(err, "request failed"))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		statusErr := &StatusError{
			StatusCode: res.StatusCode,
			Reason:     reason(res),
			Body:       string(snippet),
		}
		c.logger.Warn("composite call rejected",
			zap.Int("status", statusErr.StatusCode),
			zap.String("reason", statusErr.Reason),
			zap.String("body", statusErr.Body))
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", statusErr)
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", errors.Wrap(err, "failed to decode response"))
	}

	c.logger.Debug("composite call succeeded", zap.Int("graphs", len(out.Graphs)))
	return &out, nil
}

// reason is the status text without the numeric code.
func reason(res *http.Response) string {
	if i := strings.IndexByte(res.Status, ' '); i >= 0 {
		return res.Status[i+1:]
	}
	return http.StatusText(res.StatusCode)
}
