// Package compreface is a client for the CompreFace recognition API. It
// implements the faces.Trainer and faces.Recognizer capabilities used by
// the pipeline.
package compreface

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Client talks to one CompreFace instance.
type Client struct {
	Url       string
	parsedURL *url.URL
	apiKey    string
	logger    *log.Logger
}

// New creates a CompreFace client for the given base URL and API key.
func New(rawURL, apiKey string, logger *log.Logger) (*Client, error) {
	apiURL := rawURL + "/api/v1/recognition"
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid CompreFace URL: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{Url: apiURL, parsedURL: parsed, apiKey: apiKey, logger: logger}, nil
}

// resolveURL builds a full URL from the base API URL and the given path
// segments. A query string on the last segment is split off so JoinPath
// only receives the path portion.
func (c *Client) resolveURL(pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return c.parsedURL.String()
	}
	last := pathSegments[len(pathSegments)-1]
	if pathPart, query, ok := strings.Cut(last, "?"); ok {
		pathSegments[len(pathSegments)-1] = pathPart
		result := c.parsedURL.JoinPath(pathSegments...)
		result.RawQuery = query
		return result.String()
	}
	return c.parsedURL.JoinPath(pathSegments...).String()
}

// uploadFile POSTs a single file as a multipart form to the given endpoint.
// The caller owns the response body.
func (c *Client) uploadFile(ctx context.Context, endpoint, filePath string) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := addFileToMultipart(writer, filePath); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("could not close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolveURL(endpoint), &body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // URL constructed from validated parsedURL via resolveURL
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	return resp, nil
}

// addFileToMultipart opens a file and writes it to the multipart writer.
func addFileToMultipart(writer *multipart.Writer, filePath string) error {
	file, err := os.Open(filePath) //nolint:gosec // user-provided file path for upload
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", filePath, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("could not create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("could not copy file data: %w", err)
	}
	return nil
}

// readErrorBody reads the response body for error messages. Returns an
// empty placeholder if reading fails (we're already in an error path).
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil {
		return "(could not read error body)"
	}
	return string(body)
}
