package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/psigiovana/contratos-assinados/internal/entity"
	"github.com/psigiovana/contratos-assinados/pkg/config"
	"github.com/psigiovana/contratos-assinados/pkg/transport"
)

const (
	apiVersion          = "2022-11-28"
	maxErrorBody        = 4 << 10
	defaultRetryWaitMax = time.Second * 5
)

var ErrUnexpectedStatus = errors.New("unexpected github status")

// Client talks to the GitHub contents API of a single repository and branch.
type Client struct {
	reads   *http.Client
	writes  *http.Client
	baseURL string
	token   string
	repo    string
	branch  string
}

func NewClient(cfg config.GitHub) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	// Commits are not idempotent: only reads go through the retrying client.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &Client{
		reads: retryClient.StandardClient(),
		writes: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		token:   cfg.Token,
		repo:    cfg.Repo,
		branch:  cfg.Branch,
	}
}

type contentResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

func (r contentResponse) toEntity() entity.RemoteFile {
	return entity.RemoteFile{
		Name:        r.Name,
		Path:        r.Path,
		SHA:         r.SHA,
		Size:        r.Size,
		HTMLURL:     r.HTMLURL,
		DownloadURL: r.DownloadURL,
	}
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type putResponse struct {
	Content contentResponse `json:"content"`
}

// FileSHA returns the blob SHA of path on the configured branch and false when
// the file does not exist.
func (c *Client) FileSHA(ctx context.Context, path string) (string, bool, error) {
	var content contentResponse

	err := c.get(ctx, path, &content)
	if errors.Is(err, entity.ErrNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return content.SHA, true, nil
}

// PutFile creates path, or replaces it when sha is the current blob SHA.
// contentBase64 is sent as is.
func (c *Client) PutFile(ctx context.Context, path, contentBase64, sha string) (entity.RemoteFile, error) {
	jsonData, err := json.Marshal(putRequest{
		Message: "Upload contrato: " + path,
		Content: contentBase64,
		Branch:  c.branch,
		SHA:     sha,
	})
	if err != nil {
		return entity.RemoteFile{}, fmt.Errorf("marshal request in JSON: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(jsonData))
	if err != nil {
		return entity.RemoteFile{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.writes.Do(req)
	if err != nil {
		return entity.RemoteFile{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return entity.RemoteFile{}, statusError(resp)
	}

	var out putResponse

	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		return entity.RemoteFile{}, fmt.Errorf("decode response: %w", err)
	}

	return out.Content.toEntity(), nil
}

// List returns the files stored directly under dir. A missing directory yields
// an empty list.
func (c *Client) List(ctx context.Context, dir string) ([]entity.RemoteFile, error) {
	var entries []contentResponse

	err := c.get(ctx, dir, &entries)
	if errors.Is(err, entity.ErrNotFound) {
		return []entity.RemoteFile{}, nil
	}

	if err != nil {
		return nil, err
	}

	files := make([]entity.RemoteFile, 0, len(entries))

	for _, e := range entries {
		if e.Type != "file" {
			continue
		}

		files = append(files, e.toEntity())
	}

	return files, nil
}

// File returns the metadata of a single file; entity.ErrNotFound when absent.
func (c *Client) File(ctx context.Context, path string) (entity.RemoteFile, error) {
	var content contentResponse

	err := c.get(ctx, path, &content)
	if err != nil {
		return entity.RemoteFile{}, err
	}

	if content.Type != "" && content.Type != "file" {
		return entity.RemoteFile{}, fmt.Errorf("%w: %s is a %s", entity.ErrNotFound, path, content.Type)
	}

	return content.toEntity(), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := c.contentsURL(path) + "?ref=" + url.QueryEscape(c.branch)

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.reads.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", entity.ErrNotFound, path)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	return req, nil
}

// contentsURL escapes every segment of path but keeps the separators.
func (c *Client) contentsURL(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, c.repo, strings.Join(segments, "/"))
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(body))
}
