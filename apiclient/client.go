// Package apiclient is the single entry point page code talks to. One Client
// interface covers both transports: a live HTTP adapter against a configured
// backend, and a demo adapter that answers the same endpoints from the local
// record store. Callers never branch on which one they got.
package apiclient

import (
	"context"
	"encoding/json"

	"brf/config"
	"brf/constants"
	"brf/services"
	"brf/services/logger"
	"brf/session"
	"brf/store"
)

// Client là giao diện chung của cả hai adapter.
type Client interface {
	Get(ctx context.Context, url string, opts ...CallOption) (*Result, error)
	Post(ctx context.Context, url string, body interface{}, opts ...CallOption) (*Result, error)
	Put(ctx context.Context, url string, body interface{}, opts ...CallOption) (*Result, error)
	Delete(ctx context.Context, url string, opts ...CallOption) (*Result, error)
}

// Result là nhánh thành công của envelope chung.
type Result struct {
	ResultCode   int             `json:"result_code"`
	Result       json.RawMessage `json:"result"`
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
}

// Decode giải mã payload result vào target.
func (r *Result) Decode(target interface{}) error {
	return json.Unmarshal(r.Result, target)
}

// Error là nhánh thất bại của envelope chung. StatusCode and ResultCode are
// zero for demo-mode failures; the message string is the whole taxonomy.
type Error struct {
	Message    string
	StatusCode int
	ResultCode int
}

func (e *Error) Error() string {
	return e.Message
}

type callOptions struct {
	noAuth bool
}

// CallOption tùy chỉnh một request đơn lẻ.
type CallOption func(*callOptions)

// NoAuth đánh dấu request không cần gắn bearer token.
func NoAuth() CallOption {
	return func(o *callOptions) { o.noAuth = true }
}

func applyOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Options là các phụ thuộc để dựng client.
type Options struct {
	Config  *config.Config
	Session *session.Session
	Store   store.Store
	Rooms   *services.RoomService
	Logger  logger.Logger
}

// New dựng client theo cấu hình: không có API_BASE_URL thì dùng demo adapter,
// ngược lại dùng HTTP adapter. No package-level singleton; callers hold the
// returned client and pass it around.
func New(opts Options) Client {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	if opts.Config.DemoMode() {
		return newMockClient(opts)
	}
	return NewHTTPClient(opts.Config.APIBaseURL, opts.Session, opts.Logger)
}

func success(payload interface{}) (*Result, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return failure(err.Error())
	}
	return &Result{ResultCode: constants.ResultCodeSuccess, Result: raw}, nil
}

func failure(message string) (*Result, error) {
	return nil, &Error{Message: message}
}
