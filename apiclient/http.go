package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"brf/constants"
	"brf/response"
	"brf/services/logger"
	"brf/session"
)

// HTTPClient là adapter gửi request tới backend thật. Requests carry a JSON
// content type and, unless opted out, a bearer token from the session. An
// unauthorized signal (HTTP 401 or result_code 11) clears the session before
// the error reaches the caller.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
	logger  logger.Logger
}

func NewHTTPClient(baseURL string, sess *session.Session, log logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.Nop{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		sess:    sess,
		logger:  log,
	}
}

func (c *HTTPClient) Get(ctx context.Context, url string, opts ...CallOption) (*Result, error) {
	return c.do(ctx, http.MethodGet, url, nil, opts)
}

func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}, opts ...CallOption) (*Result, error) {
	return c.do(ctx, http.MethodPost, url, body, opts)
}

func (c *HTTPClient) Put(ctx context.Context, url string, body interface{}, opts ...CallOption) (*Result, error) {
	return c.do(ctx, http.MethodPut, url, body, opts)
}

func (c *HTTPClient) Delete(ctx context.Context, url string, opts ...CallOption) (*Result, error) {
	return c.do(ctx, http.MethodDelete, url, nil, opts)
}

func (c *HTTPClient) do(ctx context.Context, method, url string, body interface{}, opts []CallOption) (*Result, error) {
	options := applyOptions(opts)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+url, reader)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	if !options.noAuth {
		if token := c.sess.AccessToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.asError(ctx, resp.StatusCode, raw)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &Error{Message: err.Error(), StatusCode: resp.StatusCode}
	}
	return &result, nil
}

// asError dựng lỗi từ body thất bại và xử lý tín hiệu hết quyền truy cập.
func (c *HTTPClient) asError(ctx context.Context, status int, raw []byte) *Error {
	var body response.ErrorBody
	// A non-conforming error body still yields a usable message below.
	_ = json.Unmarshal(raw, &body)

	if status == http.StatusUnauthorized || body.ResultCode == constants.ResultCodeUnauthorized {
		// Fatal for the current session; the logout hook redirects to login.
		c.logger.Info("api: unauthorized response, clearing session")
		c.sess.Logout(ctx)
	}

	message := body.Result.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{
		Message:    message,
		StatusCode: status,
		ResultCode: body.ResultCode,
	}
}
