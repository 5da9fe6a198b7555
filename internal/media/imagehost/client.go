// Package imagehost is a narrow client for a Cloudinary-style media-hosting
// API: files travel as data URIs in a signed form post, the response carries
// the durable URL.
package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rbiomeds/newsdesk/internal/media"
)

const defaultBaseURL = "https://api.cloudinary.com"

const defaultTimeout = 60 * time.Second

type ClientConfig struct {
	// BaseURL overrides the API host, mainly for tests.
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
}

type ClientOption func(*Client)

type Client struct {
	base      url.URL
	cloudName string
	apiKey    string
	apiSecret string
	http      *http.Client
}

func NewClient(cfg ClientConfig, opts ...ClientOption) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if cfg.CloudName == "" {
		return nil, fmt.Errorf("missing media host cloud name")
	}

	client := &Client{
		base:      *base,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the bytes as a base64 data URI into the fixed articles
// folder and returns the host's durable URL.
func (c *Client) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("file", dataURI)
	form.Set("folder", media.Folder)
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", c.sign(timestamp))

	endpoint := c.base
	endpoint.Path = fmt.Sprintf("/v1_1/%s/image/upload", c.cloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read media host response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errRes errorResponse
		if err := json.Unmarshal(body, &errRes); err == nil && errRes.Error.Message != "" {
			return "", fmt.Errorf("media host returned %d: %s", res.StatusCode, errRes.Error.Message)
		}
		return "", fmt.Errorf("media host returned %d", res.StatusCode)
	}

	var uploadRes uploadResponse
	if err := json.Unmarshal(body, &uploadRes); err != nil {
		return "", fmt.Errorf("failed to decode media host response: %w", err)
	}

	if uploadRes.SecureURL != "" {
		return uploadRes.SecureURL, nil
	}
	if uploadRes.URL != "" {
		return uploadRes.URL, nil
	}
	return "", fmt.Errorf("media host response carries no url")
}

// sign computes the request signature the host expects: SHA-1 over the
// sorted upload params plus the API secret.
func (c *Client) sign(timestamp string) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%s%s", media.Folder, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
