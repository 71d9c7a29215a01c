// Package apiclient talks to the HR REST API on behalf of the signed-in
// session.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/config"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 64 << 10
)

type ClientInterface interface {
	GetStats(ctx context.Context) (*dashboard.Stats, error)
	Me(ctx context.Context) (user.CurrentUser, error)

	ListEmployees(ctx context.Context) ([]employee.Profile, error)
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Profile, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Profile, error)
	DeleteEmployee(ctx context.Context, id flexid.ID) error
	ListRoles(ctx context.Context) ([]employee.Role, error)
	ListDepartments(ctx context.Context) ([]employee.Department, error)

	ListHolidays(ctx context.Context) ([]holiday.Holiday, error)
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error)
}

// Client reads through a retrying transport and writes through a plain one,
// so a mutation is sent at most once.
type Client struct {
	baseURL string
	reader  *http.Client
	writer  *http.Client
}

var _ ClientInterface = (*Client)(nil)

func NewClient(cfg config.APIConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = slog.Default()
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: cfg.BaseURL,
		reader:  retryClient.StandardClient(),
		writer:  &http.Client{Timeout: cfg.Timeout},
	}
}

// authorized wraps base so every request carries the session token as a
// bearer token.
func authorized(ctx context.Context, base *http.Client) (*http.Client, error) {
	token := jwt.RawToken(ctx)
	if token == "" {
		return nil, ErrNoSession
	}

	client := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, base),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
	)
	client.Timeout = base.Timeout
	return client, nil
}

func (c *Client) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	var stats dashboard.Stats
	if err := c.get(ctx, "/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Me(ctx context.Context) (user.CurrentUser, error) {
	var me user.CurrentUser
	err := c.get(ctx, "/api/auth/me", &me)
	return me, err
}

func (c *Client) ListEmployees(ctx context.Context) ([]employee.Profile, error) {
	profiles := []employee.Profile{}
	err := c.get(ctx, "/api/employees", &profiles)
	return profiles, err
}

func (c *Client) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Profile, error) {
	var created employee.Profile
	err := c.send(ctx, http.MethodPost, "/api/employees", req, &created)
	return created, err
}

func (c *Client) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Profile, error) {
	var updated employee.Profile
	err := c.send(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(req.ID.String()), req, &updated)
	return updated, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id flexid.ID) error {
	return c.send(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(id.String()), nil, nil)
}

func (c *Client) ListRoles(ctx context.Context) ([]employee.Role, error) {
	roles := []employee.Role{}
	err := c.get(ctx, "/api/roles", &roles)
	return roles, err
}

func (c *Client) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	departments := []employee.Department{}
	err := c.get(ctx, "/api/departments", &departments)
	return departments, err
}

func (c *Client) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	holidays := []holiday.Holiday{}
	err := c.get(ctx, "/api/holidays", &holidays)
	return holidays, err
}

func (c *Client) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	var created holiday.Holiday
	err := c.send(ctx, http.MethodPost, "/api/holidays", req, &created)
	return created, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, c.reader, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, c.writer, method, path, body, out)
}

func (c *Client) do(ctx context.Context, base *http.Client, method, path string, body io.Reader, out any) error {
	client, err := authorized(ctx, base)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		slog.ErrorContext(ctx, "HR API request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := ParseAPIError(resp.StatusCode, raw)
		slog.WarnContext(ctx, "HR API rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return decode(raw, out)
}

// envelope is the {success, data} wrapper some API deployments add around
// payloads.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decode(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil && len(env.Data) > 0 {
		raw = env.Data
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsUnavailable reports whether err came from a transport failure
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
