package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"brf/constants"
	"brf/dto"
	"brf/errors"
	"brf/services"
	"brf/services/logger"
	"brf/session"
)

// mockHandler trả lời một endpoint từ dữ liệu cục bộ.
type mockHandler func(ctx context.Context, path string, body interface{}) (*Result, error)

// mockRoute là một dòng trong bảng định tuyến cố định.
type mockRoute struct {
	method  string
	pattern string
	prefix  bool
	handler mockHandler
}

// mockClient giả lập backend từ record store, giữ nguyên envelope của adapter
// thật để caller không phải phân biệt.
type mockClient struct {
	sess     *session.Session
	users    *services.UserService
	bookings *services.BookingService
	reviews  *services.ReviewService
	logger   logger.Logger
	routes   []mockRoute
}

func newMockClient(opts Options) *mockClient {
	c := &mockClient{
		sess: opts.Session,
		users: services.NewUserService(services.UserServiceOptions{
			Store:  opts.Store,
			Logger: opts.Logger,
		}),
		bookings: services.NewBookingService(services.BookingServiceOptions{
			Store:  opts.Store,
			Rooms:  opts.Rooms,
			Logger: opts.Logger,
		}),
		reviews: services.NewReviewService(services.ReviewServiceOptions{
			Store:  opts.Store,
			Logger: opts.Logger,
		}),
		logger: opts.Logger,
	}

	// Resolved in order; anything that falls through fails with the generic
	// demo-mode message. DELETE has no rows on purpose.
	c.routes = []mockRoute{
		{http.MethodGet, "/api/v1/get-user", false, c.getUser},
		{http.MethodGet, "/api/v1/get-user-booking-orders", true, c.getUserBookingOrders},
		{http.MethodGet, "/api/v1/get-room-reviews-list/", true, c.getRoomReviews},
		{http.MethodPost, "/api/v1/auth/registration", false, c.register},
		{http.MethodPost, "/api/v1/placed-booking-order/", true, c.placeBooking},
		{http.MethodPost, "/api/v1/auth/login", false, c.login},
		{http.MethodPut, "/api/v1/update-user", false, c.updateUser},
		{http.MethodPut, "/api/v1/cancel-booking-order/", true, c.cancelBooking},
		{http.MethodPut, "/api/v1/edit-room-review/", true, c.editReview},
	}
	return c
}

func (c *mockClient) Get(ctx context.Context, url string, _ ...CallOption) (*Result, error) {
	return c.dispatch(ctx, http.MethodGet, url, nil)
}

func (c *mockClient) Post(ctx context.Context, url string, body interface{}, _ ...CallOption) (*Result, error) {
	return c.dispatch(ctx, http.MethodPost, url, body)
}

func (c *mockClient) Put(ctx context.Context, url string, body interface{}, _ ...CallOption) (*Result, error) {
	return c.dispatch(ctx, http.MethodPut, url, body)
}

func (c *mockClient) Delete(ctx context.Context, url string, _ ...CallOption) (*Result, error) {
	return c.dispatch(ctx, http.MethodDelete, url, nil)
}

func (c *mockClient) dispatch(ctx context.Context, method, rawURL string, body interface{}) (*Result, error) {
	path := rawURL
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	for _, r := range c.routes {
		if r.method != method {
			continue
		}
		if r.prefix && strings.HasPrefix(path, r.pattern) {
			return r.handler(ctx, path, body)
		}
		if !r.prefix && path == r.pattern {
			return r.handler(ctx, path, body)
		}
	}

	c.logger.Debug("mock: no route for %s %s", method, path)
	return failure(errors.ErrEndpointUnavailable.Error())
}

func lastSegment(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// decodeBody chuyển body tùy ý sang struct đích qua một vòng JSON.
func decodeBody(body, target interface{}) error {
	if body == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

func (c *mockClient) getUser(ctx context.Context, _ string, _ interface{}) (*Result, error) {
	user, ok := c.sess.User(ctx)
	if !ok {
		return failure(errors.ErrNotAuthenticated.Error())
	}
	return success(dto.DataPayload{Data: user})
}

func (c *mockClient) getUserBookingOrders(ctx context.Context, _ string, _ interface{}) (*Result, error) {
	user, ok := c.sess.User(ctx)
	if !ok {
		return failure(errors.ErrNotAuthenticated.Error())
	}
	return success(dto.DataPayload{Data: dto.BookingRows{
		Rows:        c.bookings.ListByUser(ctx, user.ID),
		TotalPage:   1,
		CurrentPage: 1,
	}})
}

func (c *mockClient) getRoomReviews(ctx context.Context, path string, _ interface{}) (*Result, error) {
	roomID := lastSegment(path)
	return success(dto.DataPayload{Data: dto.ReviewRows{
		Rows:      c.reviews.ListForRoom(ctx, roomID),
		TotalPage: 1,
	}})
}

func (c *mockClient) register(ctx context.Context, _ string, body interface{}) (*Result, error) {
	var input dto.RegisterInput
	if err := decodeBody(body, &input); err != nil {
		return failure(err.Error())
	}
	user, err := c.users.Register(ctx, input)
	if err != nil {
		return failure(err.Error())
	}
	return success(dto.DataPayload{Message: "Your registration successful", Data: user})
}

func (c *mockClient) placeBooking(ctx context.Context, path string, body interface{}) (*Result, error) {
	user, ok := c.sess.User(ctx)
	if !ok {
		return failure(errors.ErrNotAuthenticated.Error())
	}
	var input dto.PlaceBookingInput
	if err := decodeBody(body, &input); err != nil {
		return failure(err.Error())
	}
	c.bookings.Place(ctx, user, lastSegment(path), input.BookingDates)
	return success(dto.DataPayload{Message: "Your room booking order placed successful", Data: map[string]interface{}{}})
}

// login không bao giờ thất bại ở demo mode: user chưa đăng ký được dựng tạm
// trong bộ nhớ, không lưu vào store.
func (c *mockClient) login(ctx context.Context, _ string, body interface{}) (*Result, error) {
	var input dto.LoginInput
	if err := decodeBody(body, &input); err != nil {
		return failure(err.Error())
	}
	user := c.users.FindOrSynthesize(ctx, input.Email)

	accessToken, refreshToken, err := services.GenerateTokenPair(user)
	if err != nil {
		c.logger.Error("mock: token pair: %v", err)
		accessToken, refreshToken = "demo-access-token", "demo-refresh-token"
	}
	c.sess.SetUserAndTokens(ctx, user, accessToken, refreshToken)

	raw, err := json.Marshal(dto.DataPayload{Data: user})
	if err != nil {
		return failure(err.Error())
	}
	return &Result{
		ResultCode:   constants.ResultCodeSuccess,
		Result:       raw,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (c *mockClient) updateUser(ctx context.Context, _ string, body interface{}) (*Result, error) {
	current, ok := c.sess.User(ctx)
	if !ok {
		return failure(errors.ErrNotAuthenticated.Error())
	}
	patch := map[string]interface{}{}
	if err := decodeBody(body, &patch); err != nil {
		return failure(err.Error())
	}
	updated := c.users.Update(ctx, current, patch)
	c.sess.SetUser(ctx, updated)
	return success(dto.DataPayload{Message: "Your profile information updated successful", Data: updated})
}

func (c *mockClient) cancelBooking(ctx context.Context, path string, _ interface{}) (*Result, error) {
	booking, err := c.bookings.Cancel(ctx, lastSegment(path))
	if err != nil {
		return failure(err.Error())
	}
	return success(dto.DataPayload{Message: "Booking order cancel successful", Data: booking})
}

func (c *mockClient) editReview(ctx context.Context, path string, body interface{}) (*Result, error) {
	var input dto.EditReviewInput
	if err := decodeBody(body, &input); err != nil {
		return failure(err.Error())
	}
	review, err := c.reviews.Edit(ctx, lastSegment(path), input.Rating, input.Message)
	if err != nil {
		return failure(err.Error())
	}
	return success(dto.DataPayload{Message: "Your reviews updating successful", Data: review})
}
