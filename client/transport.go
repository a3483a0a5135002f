package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// envelope mirrors the backend's uniform response wrapper. Success bodies
// carry data (and sometimes meta); error bodies carry error or message.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type rawRequest struct {
	method string
	url    string
	body   io.Reader
	// contentType is set verbatim when non-empty. Multipart callers pass
	// the boundary-bearing value computed by multipart.Writer.
	contentType string
	timeout     time.Duration
	// authToken overrides the held token for this one call. Sign-out
	// uses it to notify the backend after local state is already clean.
	authToken string
}

type rawResponse struct {
	status      int
	contentType string
	body        []byte
	// errText is non-empty for every failure mode: transport errors,
	// timeouts, and non-2xx statuses with their parsed server message.
	errText string
}

// roundTrip is the single choke point every primitive funnels through.
// It injects headers, enforces the deadline, applies the failure
// taxonomy, and clears the held token on a 401 before returning.
func (c *Client) roundTrip(ctx context.Context, r rawRequest) rawResponse {
	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, r.method, r.url, r.body)
	if err != nil {
		return rawResponse{errText: fmt.Sprintf("create request: %v", err)}
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	token := r.authToken
	if token == "" {
		token = c.currentToken()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return rawResponse{errText: errRequestTimeout}
		}
		return rawResponse{errText: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return rawResponse{errText: errRequestTimeout, status: resp.StatusCode}
		}
		return rawResponse{errText: err.Error(), status: resp.StatusCode}
	}

	c.logger.Debug("api call",
		"method", r.method,
		"url", r.url,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	out := rawResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The token was rejected; clear it unilaterally so no further
		// request in this user action runs against a dead token. The
		// cleanup must happen even if the caller's context is gone.
		c.invalidateToken(context.WithoutCancel(ctx))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		out.errText = errorText(body, resp.StatusCode)
	}
	return out
}

// errorText extracts the server-reported message from an error body,
// falling back to the HTTP status text.
func errorText(body []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return errUnknown
}

// do performs a JSON request against a path relative to the base URL.
func do[T any](ctx context.Context, c *Client, method, endpoint string, body any) Response[T] {
	return doURL[T](ctx, c, method, c.baseURL+endpoint, body)
}

// doURL performs a JSON request against an absolute URL. Used for
// server-issued pagination links so callers never re-derive the origin.
func doURL[T any](ctx context.Context, c *Client, method, rawURL string, body any) Response[T] {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Response[T]{Err: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	raw := c.roundTrip(ctx, rawRequest{
		method:      method,
		url:         rawURL,
		body:        reader,
		contentType: "application/json",
		timeout:     c.timeout,
	})
	if raw.errText != "" {
		return Response[T]{Err: raw.errText, Status: raw.status}
	}
	return decodeJSON[T](raw)
}

// doUpload performs a multipart/form-data POST with the extended upload
// deadline. When the backend answers with audio instead of JSON the raw
// bytes are surfaced on Response.Audio.
func doUpload[T any](ctx context.Context, c *Client, endpoint string, form *Form) Response[T] {
	body, contentType, err := form.encode()
	if err != nil {
		return Response[T]{Err: fmt.Sprintf("encode form: %v", err)}
	}

	raw := c.roundTrip(ctx, rawRequest{
		method:      http.MethodPost,
		url:         c.baseURL + endpoint,
		body:        body,
		contentType: contentType,
		timeout:     c.uploadTimeout,
	})
	if raw.errText != "" {
		return Response[T]{Err: raw.errText, Status: raw.status}
	}
	if isAudio(raw.contentType) {
		return Response[T]{
			Audio:  &Blob{ContentType: raw.contentType, Data: raw.body},
			Status: raw.status,
		}
	}
	return decodeJSON[T](raw)
}

// doBlob performs a JSON POST whose success payload is always binary
// (text-to-speech). Auth, timeout, and error handling match the other
// primitives; the body is never JSON-parsed on success.
func doBlob(ctx context.Context, c *Client, endpoint string, body any) Response[Blob] {
	encoded, err := json.Marshal(body)
	if err != nil {
		return Response[Blob]{Err: fmt.Sprintf("encode request: %v", err)}
	}

	raw := c.roundTrip(ctx, rawRequest{
		method:      http.MethodPost,
		url:         c.baseURL + endpoint,
		body:        bytes.NewReader(encoded),
		contentType: "application/json",
		timeout:     c.uploadTimeout,
	})
	if raw.errText != "" {
		return Response[Blob]{Err: raw.errText, Status: raw.status}
	}
	return Response[Blob]{
		Data:   Blob{ContentType: raw.contentType, Data: raw.body},
		Status: raw.status,
	}
}

// decodeJSON unwraps the envelope from a successful raw response.
func decodeJSON[T any](raw rawResponse) Response[T] {
	out := Response[T]{Status: raw.status}
	if len(bytes.TrimSpace(raw.body)) == 0 {
		// Some mutating endpoints (logout, delete) answer 204/empty.
		return out
	}

	var env envelope
	if err := json.Unmarshal(raw.body, &env); err != nil {
		out.Err = errUnknown
		return out
	}
	if env.Error != "" {
		out.Err = env.Error
		return out
	}
	out.Meta = env.Meta

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return out
	}
	if err := json.Unmarshal(env.Data, &out.Data); err != nil {
		return Response[T]{Status: raw.status, Err: errUnknown}
	}
	return out
}

func isAudio(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "audio/")
}
