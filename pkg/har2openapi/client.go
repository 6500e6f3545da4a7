// Package har2openapi is a small client for the conversion API served by
// the serve command.
package har2openapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Client struct {
	client http.Client
	url    string
}

func New(url string) *Client {
	return &Client{
		client: http.Client{
			Timeout: 30 * time.Second,
		},
		url: url,
	}
}

// Convert posts a HAR capture and returns the generated document as JSON.
func (c *Client) Convert(har []byte) ([]byte, error) {
	return c.convert(har, "")
}

// ConvertYAML posts a HAR capture and returns the generated document as
// YAML.
func (c *Client) ConvertYAML(har []byte) ([]byte, error) {
	return c.convert(har, "yaml")
}

func (c *Client) convert(har []byte, format string) ([]byte, error) {
	url := strings.TrimSuffix(c.url, "/") + "/convert"
	if format != "" {
		url += "?format=" + format
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(har))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read convert response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("convert failed with status %d: %s", res.StatusCode, string(body))
	}
	return body, nil
}

// Ready probes the server's readiness endpoint.
func (c *Client) Ready() error {
	res, err := c.client.Get(strings.TrimSuffix(c.url, "/") + "/ready")
	if err != nil {
		return err
	}
	res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("server not ready. %d", res.StatusCode)
	}
	return nil
}
