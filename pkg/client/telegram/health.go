package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Health reports whether the API is up. The /health endpoint does not use
// the {success,data,error} envelope, so the decoded body is returned as-is.
func (c *BasicClient) Health(ctx context.Context) (any, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request for /health: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &ClientError{
			Message: fmt.Sprintf("request to /health failed: %s", err),
			cause:   err,
		}
	}

	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("endpoint", "/health"),
				slog.Any("error", cerr),
			)
		}
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &ClientError{
			Message:    fmt.Sprintf("unexpected status %d for /health", res.StatusCode),
			StatusCode: res.StatusCode,
		}
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &ClientError{
			Message:    fmt.Sprintf("error reading response body for /health: %s", err),
			StatusCode: res.StatusCode,
			cause:      err,
		}
	}

	var body any
	if err = json.Unmarshal(raw, &body); err != nil {
		return nil, &ClientError{
			Message:    fmt.Sprintf("error unmarshalling response body for /health: %s", err),
			StatusCode: res.StatusCode,
			cause:      err,
		}
	}

	return body, nil
}
