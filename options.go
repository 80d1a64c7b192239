package slackweb

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/bft-labs/slackweb/pkg/log"
	"github.com/bft-labs/slackweb/pkg/transport"
)

// DefaultTimeout bounds each request made by a sender from New.
const DefaultTimeout = 30 * time.Second

// Option configures the sender built by New.
type Option func(*options)

type options struct {
	httpClient transport.HTTPClient
	logger     log.Logger
	timeout    time.Duration
	userAgent  string
	tracer     trace.Tracer
}

func defaultOptions() options {
	return options{
		logger:  log.NewNoopLogger(),
		timeout: DefaultTimeout,
	}
}

// WithHTTPClient sets a custom HTTP client. WithTimeout is ignored when a
// client is given; configure the timeout on the client instead.
func WithHTTPClient(client transport.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithTracer wraps the sender so every call opens a client span on tracer.
// Token values are never recorded.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}
