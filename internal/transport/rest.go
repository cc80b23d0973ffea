// Package transport implements the authenticated REST transport: bearer token
// attachment, 401 detection, single-flight token refresh, and retry-once
// semantics. Callers never observe the refresh mechanics; they receive either
// the eventual response or a mapped taxonomy error.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/session"
	"github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const (
	refreshEndpoint = "/auth/refresh"

	authHeaderKey = "Authorization"
	contentType   = "application/json"

	refreshKey = "refresh"
)

// exemptPaths lists endpoint path fragments that are sent without a bearer
// token and must never trigger a token refresh. A 401 on one of these is a
// credential or authorization problem, not an expired access token.
var exemptPaths = []string{
	"login",
	"login-player",
	"check-email",
	"register",
	"register-player",
	"refresh",
	"logout",
}

// RESTTransport handles JSON/REST communication with the CoachDesk API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	store       *session.Store
	refresh     singleflight.Group
	logger      types.Logger
	hooks       *types.Hooks

	// onSessionExpired fires after the store has been cleared by the
	// coordinator (refresh failure or retried request rejected again)
	onSessionExpired func()
}

// Options for the REST transport
type Options struct {
	BaseURL          string
	HTTPClient       *http.Client
	Headers          map[string]string
	RetryConfig      *types.RetryConfig
	Store            *session.Store
	Logger           types.Logger
	Hooks            *types.Hooks
	OnSessionExpired func()
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// The refresh credential rides an HTTP-only cookie set at login, so the
	// client needs a jar to carry it back on /auth/refresh.
	if opts.HTTPClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			opts.HTTPClient.Jar = jar
		}
	}

	if opts.Store == nil {
		opts.Store = session.NewStore(opts.Logger)
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		// 401/403 are handled by the refresh coordinator, never by the
		// transient retry layer
		retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
			if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
				return false, nil
			}
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	headers := map[string]string{
		"Accept":          contentType,
		"Content-Type":    contentType,
		"Client-Platform": "go-sdk",
		"User-Agent":      types.UserAgent,
	}

	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:          opts.BaseURL,
		httpClient:       opts.HTTPClient,
		retryClient:      retryClient,
		headers:          headers,
		store:            opts.Store,
		logger:           opts.Logger,
		hooks:            opts.Hooks,
		onSessionExpired: opts.OnSessionExpired,
	}
}

// Do executes a JSON request against the API and decodes the response body
// into result. Non-exempt requests carry the current bearer token; a 401 on
// them triggers a coordinated refresh and a single retry.
func (t *RESTTransport) Do(ctx context.Context, method, path string, body, result interface{}) error {
	token := ""
	if !isExempt(path) {
		token = t.store.Token()
		t.logTokenExpiry(token)
	}
	return t.execute(ctx, method, path, body, result, token, 0)
}

// execute sends the request with an explicit token. attempt counts how often
// this logical request has been retried after a refresh; at most once.
func (t *RESTTransport) execute(ctx context.Context, method, path string, body, result interface{}, token string, attempt int) error {
	status, respBody, err := t.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		return t.handleUnauthorized(ctx, method, path, body, result, respBody, attempt)
	}

	if status < 200 || status >= 300 {
		return t.handleHTTPError(status, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal response")
		}
	}

	return nil
}

// handleUnauthorized implements the 401 state machine: exempt endpoints are
// rejected immediately, an already-retried request escalates to logout, and
// everything else joins the shared refresh and retries exactly once.
func (t *RESTTransport) handleUnauthorized(ctx context.Context, method, path string, body, result interface{}, respBody []byte, attempt int) error {
	if isExempt(path) {
		if strings.Contains(path, "login") {
			return &types.Error{
				Code:       "INVALID_CREDENTIALS",
				Message:    backendMessage(respBody, types.ErrInvalidCredentials.Error()),
				StatusCode: http.StatusUnauthorized,
				Err:        types.ErrInvalidCredentials,
			}
		}
		return &types.Error{
			Code:       "UNAUTHORIZED",
			Message:    backendMessage(respBody, types.ErrUnauthorized.Error()),
			StatusCode: http.StatusUnauthorized,
			Err:        types.ErrUnauthorized,
		}
	}

	if attempt > 0 {
		// Second 401 on the same logical request. The refreshed token was
		// rejected too; give up before this turns into a loop.
		if t.logger != nil {
			t.logger.Warn("Request rejected after token refresh", "method", method, "path", path)
		}
		t.expireSession()
		return sessionExpiredError(respBody)
	}

	newToken, err := t.Refresh(ctx)
	if err != nil {
		return err
	}

	if t.logger != nil {
		t.logger.Debug("Retrying request with refreshed token", "method", method, "path", path)
	}
	return t.execute(ctx, method, path, body, result, newToken, attempt+1)
}

// Refresh performs a coordinated token refresh. Any number of concurrent
// callers share a single /auth/refresh call; all of them receive the same
// refreshed token or the same error.
func (t *RESTTransport) Refresh(ctx context.Context) (string, error) {
	v, err, _ := t.refresh.Do(refreshKey, func() (interface{}, error) {
		return t.doRefresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// doRefresh issues the actual refresh call. It runs at most once per
// single-flight window. The refresh credential is an HTTP-only cookie carried
// by the client jar, so the request has no body and no bearer header.
func (t *RESTTransport) doRefresh(ctx context.Context) (string, error) {
	gen := t.store.Generation()

	status, respBody, err := t.send(ctx, http.MethodPost, refreshEndpoint, nil, "")
	if err != nil {
		t.expireSession()
		return "", &types.Error{
			Code:    "REFRESH_FAILED",
			Message: types.ErrSessionExpired.Error(),
			Err:     types.ErrSessionExpired,
		}
	}

	if status != http.StatusOK {
		if t.logger != nil {
			t.logger.Warn("Token refresh rejected", "status", status)
		}
		t.expireSession()
		return "", sessionExpiredError(respBody)
	}

	var refreshResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &refreshResp); err != nil || refreshResp.Token == "" {
		t.expireSession()
		return "", sessionExpiredError(nil)
	}

	if !t.store.SetTokenIf(gen, refreshResp.Token) {
		// A logout happened while the refresh was in flight. The store stays
		// empty and the refreshed token is discarded.
		if t.logger != nil {
			t.logger.Warn("Discarding refreshed token, session changed mid-refresh")
		}
		return "", sessionExpiredError(nil)
	}

	if t.logger != nil {
		t.logger.Info("Access token refreshed")
	}

	return refreshResp.Token, nil
}

// expireSession clears the store and notifies the owner so it can route the
// user back to the unauthenticated entry point.
func (t *RESTTransport) expireSession() {
	t.store.Clear()
	if t.onSessionExpired != nil {
		t.onSessionExpired()
	}
}

// send performs one HTTP round trip. A non-empty token is attached as a
// bearer header. Network-level failures are mapped to the connectivity error.
func (t *RESTTransport) send(ctx context.Context, method, path string, body interface{}, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to marshal request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create request")
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	if token != "" {
		req.Header.Set(authHeaderKey, fmt.Sprintf("Bearer %s", token))
	}

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, req)
	}

	if t.logger != nil {
		t.logger.Debug("API request", "method", method, "path", path)
	}

	start := time.Now()
	resp, err := t.doRequest(req)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return 0, nil, &types.Error{
			Code:    "NETWORK_ERROR",
			Message: types.ErrConnectivity.Error(),
			Err:     types.ErrConnectivity,
		}
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to read response")
	}

	if t.logger != nil {
		t.logger.Debug("API response", "method", method, "path", path, "status", resp.StatusCode, "duration", duration)
	}

	return resp.StatusCode, respBody, nil
}

// doRequest executes the HTTP request with transient retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError maps non-401 HTTP failures to the error taxonomy. None of
// these ever trigger a refresh.
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusForbidden:
		return &types.Error{
			Code:       "FORBIDDEN",
			Message:    backendMessage(body, "you do not have permission to perform this action"),
			StatusCode: statusCode,
			Err:        types.ErrForbidden,
		}
	case http.StatusNotFound:
		return &types.Error{
			Code:       "NOT_FOUND",
			Message:    backendMessage(body, types.ErrNotFound.Error()),
			StatusCode: statusCode,
			Err:        types.ErrNotFound,
		}
	case http.StatusTooManyRequests:
		return &types.Error{
			Code:       "RATE_LIMITED",
			Message:    backendMessage(body, types.ErrRateLimited.Error()),
			StatusCode: statusCode,
			Err:        types.ErrRateLimited,
		}
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return &types.Error{
			Code:       "TIMEOUT",
			Message:    backendMessage(body, types.ErrTimeout.Error()),
			StatusCode: statusCode,
			Err:        types.ErrTimeout,
		}
	case http.StatusBadRequest:
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    backendMessage(body, "invalid request"),
			StatusCode: statusCode,
		}
	default:
		if statusCode >= 500 {
			msg := fmt.Sprintf("server error: %d", statusCode)
			if backend := backendMessage(body, ""); backend != "" {
				msg = fmt.Sprintf("%s: %s", msg, backend)
			}
			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    msg,
				StatusCode: statusCode,
				Err:        types.ErrServerError,
			}
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
		}
	}
}

// logTokenExpiry decodes the token expiry for diagnostics only. Decode
// failures are swallowed; the request proceeds and the server decides.
func (t *RESTTransport) logTokenExpiry(token string) {
	if t.logger == nil || token == "" {
		return
	}
	if exp, ok := types.TokenExpiry(token); ok {
		t.logger.Debug("Attaching bearer token", "expiresAt", exp, "expired", time.Now().After(exp))
	}
}

// isExempt reports whether the path is on the unauthenticated skip-list
func isExempt(path string) bool {
	for _, fragment := range exemptPaths {
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}

// backendMessage prefers a structured message from the response body over the
// generic fallback text.
func backendMessage(body []byte, fallback string) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &errResp)

	if errResp.Message != "" {
		return errResp.Message
	}
	if errResp.Error != "" {
		return errResp.Error
	}
	return fallback
}

func sessionExpiredError(body []byte) error {
	return &types.Error{
		Code:       "SESSION_EXPIRED",
		Message:    backendMessage(body, types.ErrSessionExpired.Error()),
		StatusCode: http.StatusUnauthorized,
		Err:        types.ErrSessionExpired,
	}
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
