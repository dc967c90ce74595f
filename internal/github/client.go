package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"ghprofile/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ErrFetchFailed is wrapped by every error FetchUser returns: transport
// failures, non-2xx responses and undecodable bodies alike.
var ErrFetchFailed = errors.New("fetch failed")

// userAgent is sent on every request; the API rejects requests without one.
const userAgent = "ghprofile"

// HTTPClient is the subset of *http.Client used by Client (allows stubbing in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches user profiles.
type Client struct {
	httpClient HTTPClient
	tracer     oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTracerProvider records fetch spans on tp instead of the global provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

const tracerName = "ghprofile/github"

// NewClient creates a client. A nil httpClient falls back to http.DefaultClient.
func NewClient(httpClient HTTPClient, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchUser issues one GET to locator and decodes the profile.
// Any failure is returned wrapped around ErrFetchFailed.
func (c *Client) FetchUser(ctx context.Context, locator string) (*UserProfile, error) {
	ctx, span := c.tracer.Start(ctx, "github.fetch_user",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", locator)),
	)
	defer span.End()

	profile, status, err := c.fetch(ctx, locator)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("github: fetch %s: %v", locator, err)
		return nil, err
	}
	return profile, nil
}

func (c *Client) fetch(ctx context.Context, locator string) (*UserProfile, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: create request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: request: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var profile UserProfile
	if err := jsonutil.UnmarshalObject(body, &profile, "decode profile"); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return &profile, resp.StatusCode, nil
}
