package relay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/pkg/transport"
)

const maxErrorBody = 4 << 10

// Client submits rendered contracts to the relay's upload endpoint.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
		url: strings.TrimRight(url, "/"),
	}
}

type UploadRequest struct {
	Name          string `json:"name"`
	ContentBase64 string `json:"contentBase64"`
}

// Store makes a single upload attempt. Any failure is logged and reported as
// entity.OutcomeFailed.
func (c *Client) Store(ctx context.Context, path string, content []byte) entity.PersistenceOutcome {
	err := c.upload(ctx, path, content)
	if err != nil {
		slog.WarnContext(ctx, "upload contract", "path", path, "error", err)
		return entity.OutcomeFailed
	}

	slog.InfoContext(ctx, "contract uploaded", "path", path)

	return entity.OutcomeSaved
}

func (c *Client) upload(ctx context.Context, path string, content []byte) error {
	jsonData, err := json.Marshal(UploadRequest{
		Name:          path,
		ContentBase64: base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return fmt.Errorf("marshal request in JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/upload", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %w", entity.ErrPersistence, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: unexpected code %d: %s", entity.ErrPersistence, resp.StatusCode, bytes.TrimSpace(body))
	}

	return nil
}
