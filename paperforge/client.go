package paperforge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default connection settings for the Paperforge API.
const (
	DefaultBaseURL = "https://api.paperforge.io"
	DefaultTimeout = 30 * time.Second
)

// defaultFilename is used when the response carries no usable
// Content-Disposition header.
const defaultFilename = "document.pdf"

var filenamePattern = regexp.MustCompile(`filename="?([^";\n]+)"?`)

// Client talks to the Paperforge document generation API.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	headers    map[string]string
	debug      bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Paperforge client. The API key is required;
// everything else defaults and can be overridden with options. No network
// activity occurs during construction.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("paperforge API key is required")
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimSuffix(client.baseURL, "/")
	if client.httpClient == nil {
		client.httpClient = &http.Client{}
	}

	return client, nil
}

// Generate renders the given template with the supplied data and returns
// the generated document. The request may be nil when the template needs no
// data. Exactly one of the result or a classified *Error is returned.
func (c *Client) Generate(ctx context.Context, templateID string, request *GenerateRequest) (*GenerateResult, error) {
	if templateID == "" {
		return nil, &Error{
			Kind:    KindValidation,
			Code:    "invalid_template_id",
			Message: "template ID must not be empty",
		}
	}
	if request == nil {
		request = &GenerateRequest{}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, &Error{
			Kind:    KindValidation,
			Code:    "invalid_request",
			Message: fmt.Sprintf("failed to encode request body: %v", err),
		}
	}

	requestURL := fmt.Sprintf("%s/api/v1/generate/%s", c.baseURL, url.PathEscape(templateID))

	// The timeout is armed when the call begins and aborts the in-flight
	// request on expiry.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Cause:   err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if c.debug {
		c.logRequest(requestURL, req.Header, body)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransport(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classifyTransport(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyResponse(resp, data)
	}

	result := &GenerateResult{
		Document:         data,
		Filename:         filenameFromDisposition(resp.Header.Get("Content-Disposition")),
		GenerationTimeMs: parseIntHeader(resp.Header.Get("X-Generation-Time-Ms")),
		ContentLength:    resp.ContentLength,
	}
	if result.ContentLength <= 0 {
		result.ContentLength = int64(len(data))
	}

	if c.debug {
		c.logger.Debug().
			Str("filename", result.Filename).
			Int64("generation_ms", result.GenerationTimeMs).
			Int64("content_length", result.ContentLength).
			Msg("Generated document")
	}

	return result, nil
}

// classifyTransport maps a failure that occurred before a usable HTTP
// response into the Timeout or Network kind. An already classified error
// passes through unchanged.
func (c *Client) classifyTransport(ctx context.Context, err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("request timed out after %s", c.timeout),
		}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("request failed: %v", err),
		Cause:   err,
	}
}

// classifyResponse builds the classified error for a non-2xx response.
// Malformed bodies are tolerated rather than causing a secondary failure.
func classifyResponse(resp *http.Response, body []byte) *Error {
	var wire apiErrorBody
	if err := json.Unmarshal(body, &wire); err != nil {
		wire = apiErrorBody{
			ErrorCode: "Unknown Error",
			Message:   http.StatusText(resp.StatusCode),
		}
	}

	apiErr := &Error{
		Kind:       classifyStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Code:       wire.ErrorCode,
		Message:    wire.Message,
		Details:    wire.Details,
	}

	if apiErr.Kind == KindRateLimit {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			apiErr.RetryAfter = &secs
		}
	}

	return apiErr
}

// filenameFromDisposition extracts and percent-decodes the filename from a
// Content-Disposition header value.
func filenameFromDisposition(disposition string) string {
	match := filenamePattern.FindStringSubmatch(disposition)
	if match == nil {
		return defaultFilename
	}
	if decoded, err := url.PathUnescape(match[1]); err == nil {
		return decoded
	}
	return match[1]
}

// parseIntHeader returns the header value as an integer, or 0 when missing
// or unparsable.
func parseIntHeader(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// logRequest emits the pre-send diagnostic record with the Authorization
// value masked.
func (c *Client) logRequest(requestURL string, headers http.Header, body []byte) {
	masked := make(map[string]string, len(headers))
	for key := range headers {
		if key == "Authorization" {
			masked[key] = "Bearer ***"
			continue
		}
		masked[key] = headers.Get(key)
	}

	c.logger.Debug().
		Str("url", requestURL).
		Interface("headers", masked).
		RawJSON("body", body).
		Msg("Sending generate request")
}
