package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/common"
	"github.com/akarpovs/sportactive/internal/logging"
)

// envelope is the uniform response wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Total   int             `json:"total,omitempty"`
}

// HTTPClient implements Client over the REST backend.
//
// Outbound requests carry Content-Type: application/json, a generated
// X-Request-Id, and Authorization: Bearer <token> whenever the token
// source yields a non-empty token. A 401 from any endpoint invokes the
// onUnauthorized hook before the error is returned.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
	logger         logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithTokenSource sets the bearer-token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithHTTPClient replaces the underlying http.Client (test seam).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func NewHTTPClient(baseURL string, logger logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetOnUnauthorized registers the hook invoked when any request comes back
// with 401. Wired after construction because the session store that purges
// the durable keys is itself built on top of this client.
func (c *HTTPClient) SetOnUnauthorized(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

// SetTokenSource replaces the bearer-token provider. Wired after
// construction for the same reason as SetOnUnauthorized.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one request/response round trip: marshals body (if any),
// decorates headers, sends, unwraps the envelope, and decodes data into out
// (if non-nil). Returns the envelope total alongside.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			// A broken token source must not fail the request; the server
			// decides what an unauthenticated call may do.
			c.logger.Warn(ctx, "token source failed", "error", err)
		} else if token != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn(ctx, "request unauthorized, invalidating session", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return 0, common.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return 0, &RemoteError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Total, nil
}

// Ping hits the health endpoint; any 2xx counts as alive. The envelope is
// not required here.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: health returned %s", common.ErrUnavailable, resp.Status)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, user models.NewUser) (*models.UserRecord, error) {
	var rec models.UserRecord
	if _, err := c.do(ctx, http.MethodPost, "/users/register", nil, user, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.UserRecord, error) {
	var rec models.UserRecord
	if _, err := c.do(ctx, http.MethodPost, "/users/login", nil, creds, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.UserRecord, error) {
	var rec models.UserRecord
	if _, err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.UserRecord, error) {
	var rec models.UserRecord
	if _, err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), nil, patch, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) ListActivities(ctx context.Context, params models.ListActivitiesParams) ([]models.Activity, int, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var activities []models.Activity
	total, err := c.do(ctx, http.MethodGet, "/activities", query, nil, &activities)
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func (c *HTTPClient) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	var a models.Activity
	if _, err := c.do(ctx, http.MethodGet, "/activities/"+strconv.FormatInt(id, 10), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) CreateActivity(ctx context.Context, activity models.NewActivity) (*models.Activity, error) {
	var a models.Activity
	if _, err := c.do(ctx, http.MethodPost, "/activities", nil, activity, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) UpdateActivity(ctx context.Context, id int64, activity models.NewActivity) (*models.Activity, error) {
	var a models.Activity
	if _, err := c.do(ctx, http.MethodPut, "/activities/"+strconv.FormatInt(id, 10), nil, activity, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) DeleteActivity(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/activities/"+strconv.FormatInt(id, 10), nil, nil, nil)
	return err
}

func (c *HTTPClient) MyCreatedActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if _, err := c.do(ctx, http.MethodGet, "/activities/my/created", nil, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *HTTPClient) CreateRegistration(ctx context.Context, activityID int64) (*models.Registration, error) {
	var reg models.Registration
	body := map[string]int64{"activityId": activityID}
	if _, err := c.do(ctx, http.MethodPost, "/registrations", nil, body, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (c *HTTPClient) CancelRegistrationByActivity(ctx context.Context, activityID int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/registrations/activity/"+strconv.FormatInt(activityID, 10), nil, nil, nil)
	return err
}

func (c *HTTPClient) CancelRegistration(ctx context.Context, registrationID int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/registrations/"+strconv.FormatInt(registrationID, 10), nil, nil, nil)
	return err
}

func (c *HTTPClient) MyRegistrations(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	if _, err := c.do(ctx, http.MethodGet, "/registrations/my", nil, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (c *HTTPClient) ActivityRegistrations(ctx context.Context, activityID int64) ([]models.Registration, error) {
	var regs []models.Registration
	if _, err := c.do(ctx, http.MethodGet, "/registrations/activity/"+strconv.FormatInt(activityID, 10), nil, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (c *HTTPClient) CheckRegistration(ctx context.Context, activityID int64) (bool, error) {
	var result struct {
		IsRegistered bool `json:"isRegistered"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/registrations/check/"+strconv.FormatInt(activityID, 10), nil, nil, &result); err != nil {
		return false, err
	}
	return result.IsRegistered, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	var o models.Order
	if _, err := c.do(ctx, http.MethodPost, "/orders", nil, order, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) MyOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var orders []models.Order
	if _, err := c.do(ctx, http.MethodGet, "/orders/my", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	if _, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderNumber), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) PayOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	if _, err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderNumber)+"/pay", nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) CancelOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	if _, err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderNumber)+"/cancel", nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) RefundOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	if _, err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderNumber)+"/refund", nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) OrderStats(ctx context.Context) (*models.OrderStats, error) {
	var stats models.OrderStats
	if _, err := c.do(ctx, http.MethodGet, "/orders/stats/my", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, comment models.NewComment) (*models.Comment, error) {
	var cm models.Comment
	if _, err := c.do(ctx, http.MethodPost, "/comments", nil, comment, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *HTTPClient) ActivityComments(ctx context.Context, activityID int64, page, limit int) ([]models.Comment, int, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var comments []models.Comment
	total, err := c.do(ctx, http.MethodGet, "/comments/activity/"+strconv.FormatInt(activityID, 10), query, nil, &comments)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (c *HTTPClient) MyComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if _, err := c.do(ctx, http.MethodGet, "/comments/my", nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/comments/"+strconv.FormatInt(commentID, 10), nil, nil, nil)
	return err
}

func (c *HTTPClient) ActivityRatingStats(ctx context.Context, activityID int64) (*models.RatingStats, error) {
	var stats models.RatingStats
	if _, err := c.do(ctx, http.MethodGet, "/comments/stats/"+strconv.FormatInt(activityID, 10), nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

var _ Client = (*HTTPClient)(nil)
