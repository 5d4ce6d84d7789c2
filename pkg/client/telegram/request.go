package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// envelope is the uniform response wrapper returned by the API for every
// endpoint except /health.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *BasicClient) get(ctx context.Context, endpoint string, query url.Values) (any, error) {
	return c.request(ctx, http.MethodGet, endpoint, query, nil)
}

// post sends a POST request. A nil payload still sends an empty JSON object,
// which is what the API expects for parameterless actions.
func (c *BasicClient) post(ctx context.Context, endpoint string, payload any) (any, error) {
	if payload == nil {
		payload = struct{}{}
	}
	return c.request(ctx, http.MethodPost, endpoint, nil, payload)
}

func (c *BasicClient) put(ctx context.Context, endpoint string, payload any) (any, error) {
	return c.request(ctx, http.MethodPut, endpoint, nil, payload)
}

// delete sends a DELETE request. A nil payload omits the request body
// entirely rather than sending an empty JSON object.
func (c *BasicClient) delete(ctx context.Context, endpoint string, payload any) (any, error) {
	return c.request(ctx, http.MethodDelete, endpoint, nil, payload)
}

// request is the single dispatch path shared by every operation: it builds
// the HTTP request, executes it, and unwraps the response envelope.
func (c *BasicClient) request(
	ctx context.Context,
	method string,
	endpoint string,
	query url.Values,
	payload any,
) (any, error) {
	target := c.cfg.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error marshalling payload for %s: %w", endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", endpoint, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &ClientError{
			Message: fmt.Sprintf("request to %s failed: %s", endpoint, err),
			cause:   err,
		}
	}

	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("endpoint", endpoint),
				slog.Any("error", cerr),
			)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &ClientError{
			Message:    fmt.Sprintf("error reading response body for %s: %s", endpoint, err),
			StatusCode: res.StatusCode,
			cause:      err,
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &ClientError{
			Message:    fmt.Sprintf("unexpected status %d for %s", res.StatusCode, endpoint),
			StatusCode: res.StatusCode,
		}
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return nil, &ClientError{
			Message:    fmt.Sprintf("error unmarshalling response envelope for %s: %s", endpoint, err),
			StatusCode: res.StatusCode,
			cause:      err,
		}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, &ClientError{
			Message:    msg,
			StatusCode: res.StatusCode,
		}
	}

	return unwrapData(env.Data), nil
}

// unwrapData extracts the envelope's data field. Most endpoints JSON-encode
// their payload into a string inside the envelope, some return it already
// structured; a string that parses as JSON gets a second decode pass, a
// string that does not is returned verbatim. This mirrors the API's uneven
// encoding across endpoints and must not be "fixed" client-side.
func unwrapData(data json.RawMessage) any {
	if len(data) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return string(data)
	}

	s, ok := value.(string)
	if !ok || s == "" {
		return value
	}

	var nested any
	if err := json.Unmarshal([]byte(s), &nested); err != nil {
		return s
	}
	return nested
}
