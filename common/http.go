package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// HTTPClient HTTP客户端
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	proxy   string
	logger  zerolog.Logger
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"Connection": "keep-alive",
		},
		logger: zerolog.Nop(),
	}
}

// SetHTTPClient 替换底层 http.Client（测试或自定义连接池）
// 保存的是副本，之后的 SetTimeout / SetProxy 不会修改调用方的 client
func (c *HTTPClient) SetHTTPClient(client *http.Client) {
	if client != nil {
		cp := *client
		c.client = &cp
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		c.proxy = ""
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	if existing, ok := c.client.Transport.(*http.Transport); ok {
		transport.TLSClientConfig = existing.TLSClientConfig
	}

	c.client.Transport = transport
	c.proxy = proxyURL
	return nil
}

// GetProxy 获取当前代理设置
func (c *HTTPClient) GetProxy() string {
	return c.proxy
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetLogger 设置日志
func (c *HTTPClient) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// Get 发送GET请求，path 可以带查询字符串
func (c *HTTPClient) Get(ctx context.Context, path string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, "", nil)
}

// PostForm 发送 application/x-www-form-urlencoded 的POST请求
func (c *HTTPClient) PostForm(ctx context.Context, path, body string, headers map[string]string) ([]byte, error) {
	h := make(map[string]string, len(headers)+1)
	h["Content-Type"] = "application/x-www-form-urlencoded"
	for k, v := range headers {
		h[k] = v
	}
	return c.Request(ctx, http.MethodPost, path, body, h)
}

// Request 发送HTTP请求，返回 2xx 响应体
func (c *HTTPClient) Request(ctx context.Context, method, path, body string, headers map[string]string) ([]byte, error) {
	reqURL := c.baseURL + path

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	requestID := NewRequestID()
	start := time.Now()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", reqURL).
		Int("body_len", len(body)).
		Msg("sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn().Str("request_id", requestID).Err(closeErr).Msg("close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("body_len", len(respBody)).
		Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
