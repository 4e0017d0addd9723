package httpx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPError is returned by Client for non-2xx responses. Message carries the
// error description from the server's error envelope when one was present.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, e.Message)
}

// Client is a thin JSON client for service REST APIs.
type Client struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

func (c *Client) Get(path string, respObj any) error {
	return c.do(http.MethodGet, path, nil, respObj)
}

func (c *Client) Post(path string, reqObj, respObj any) error {
	return c.do(http.MethodPost, path, reqObj, respObj)
}

func (c *Client) Put(path string, reqObj, respObj any) error {
	return c.do(http.MethodPut, path, reqObj, respObj)
}

func (c *Client) Delete(path string, respObj any) error {
	return c.do(http.MethodDelete, path, nil, respObj)
}

func (c *Client) do(method, path string, reqObj, respObj any) error {
	var body io.Reader
	if reqObj != nil {
		reqBody, err := json.Marshal(reqObj)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	fullURL := strings.TrimRight(c.BaseURL, "/") + path
	request, err := http.NewRequest(method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqObj != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{
		Transport: c.Transport,
		Timeout:   timeout,
	}
	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		raw, _ := io.ReadAll(response.Body)
		msg := string(raw)
		var envelope errorRsp
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &HTTPError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Message:    msg,
		}
	}

	if respObj == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(respObj); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
