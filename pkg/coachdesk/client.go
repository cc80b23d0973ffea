package coachdesk

import (
	"context"
	"net/http"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/session"
	"github.com/coachdesk/coachdesk-go/internal/transport"
	internalTypes "github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/getsentry/sentry-go"
)

const (
	// DefaultBaseURL is the default CoachDesk API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// UserAgent is the user agent string
	UserAgent = internalTypes.UserAgent
)

// Client is the main CoachDesk API client
type Client struct {
	// Service interfaces
	Auth     AuthService
	Teams    TeamService
	Players  PlayerService
	Plans    PlanService
	Wellness WellnessService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	store      *session.Store
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides direct authentication token
	Token string

	// SessionFile path for session persistence
	SessionFile string

	// Logger for debug logging
	Logger Logger

	// RetryConfig enables transient retry for 5xx/network failures. Nil
	// means no automatic retry.
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// OnSessionExpired is called after the session has been cleared because
	// a refresh failed or a retried request was rejected again. Apps use it
	// to route back to their login screen.
	OnSessionExpired func()

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles authenticated HTTP communication
type Transport interface {
	Do(ctx context.Context, method, path string, body, result interface{}) error
	Refresh(ctx context.Context) (string, error)
}

// NewClient creates a new CoachDesk client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	store := session.NewStore(opts.Logger)

	if opts.Token != "" {
		sess := &internalTypes.Session{Token: opts.Token}
		if exp, ok := internalTypes.TokenExpiry(opts.Token); ok {
			sess.ExpiresAt = exp
		}
		store.Set(sess)
	}

	// Create transport using the internal package
	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:          opts.BaseURL,
		HTTPClient:       opts.HTTPClient,
		RetryConfig:      opts.RetryConfig,
		Store:            store,
		Logger:           opts.Logger,
		Hooks:            opts.Hooks,
		OnSessionExpired: opts.OnSessionExpired,
	})

	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		store:      store,
		options:    opts,
	}

	c.initServices()

	// Load session if file specified
	if opts.SessionFile != "" {
		if err := c.Auth.LoadSession(opts.SessionFile); err != nil && opts.Logger != nil {
			opts.Logger.Warn("Failed to load session", "error", err)
		}
	}

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Auth = newAuthService(c)
	c.Teams = &teamService{client: c}
	c.Players = &playerService{client: c}
	c.Plans = &planService{client: c}
	c.Wellness = &wellnessService{client: c}
}

// Session returns a copy of the current session, or nil when logged out
func (c *Client) Session() *Session {
	return convertSession(c.store.Session())
}

// do executes an API request with rate limiting and error capture. All
// service calls funnel through here; the transport below it owns the bearer
// and refresh mechanics.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			captureError(ctx, err, method, path, 0)
			return err
		}
	}

	start := time.Now()
	err := c.transport.Do(ctx, method, path, body, result)
	duration := time.Since(start)

	if err != nil {
		captureError(ctx, err, method, path, duration)
	}

	return err
}

// captureError reports a request failure to Sentry with endpoint context
func captureError(ctx context.Context, err error, method, path string, duration time.Duration) {
	scopeFn := func(scope *sentry.Scope) {
		scope.SetTag("http.method", method)
		scope.SetContext("request", map[string]interface{}{
			"path":     path,
			"duration": duration.String(),
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeFn(scope)
			hub.CaptureException(err)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scopeFn(scope)
		sentry.CaptureException(err)
	})
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
