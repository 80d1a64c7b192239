package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bft-labs/slackweb/pkg/log"
)

// DefaultUserAgent is sent when no other User-Agent is configured.
const DefaultUserAgent = "slackweb/" + Version

// HTTPSender implements RequestSender on top of an HTTPClient.
// It keeps no per-call state and is safe for concurrent use.
type HTTPSender struct {
	client    HTTPClient
	logger    log.Logger
	userAgent string
}

// HTTPSenderOption configures an HTTPSender.
type HTTPSenderOption func(*HTTPSender)

// WithUserAgent overrides the User-Agent header. An empty string keeps
// the default.
func WithUserAgent(ua string) HTTPSenderOption {
	return func(s *HTTPSender) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// NewHTTPSender creates a new HTTP sender. A nil client means
// http.DefaultClient and a nil logger discards output.
func NewHTTPSender(client HTTPClient, logger log.Logger, opts ...HTTPSenderOption) *HTTPSender {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	s := &HTTPSender{
		client:    client,
		logger:    logger,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements RequestSender.
func (s *HTTPSender) Get(ctx context.Context, methodURL string, params []Pair) (string, error) {
	u, err := parseMethodURL(methodURL)
	if err != nil {
		return "", err
	}

	token, found, rest, dropped := SplitToken(params)
	if dropped > 0 {
		s.logger.Debug("multiple token parameters, using the last one",
			log.String("url", u.Redacted()),
			log.Int("dropped", dropped),
		)
	}

	if q := rest.Encode(); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &ConfigError{URL: methodURL, Reason: "build request", Err: err}
	}

	if found {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return s.do(req)
}

// Post implements RequestSender.
func (s *HTTPSender) Post(ctx context.Context, methodURL string, form []Pair, headers []Pair) (string, error) {
	u, err := parseMethodURL(methodURL)
	if err != nil {
		return "", err
	}

	body := Params(form).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(body))
	if err != nil {
		return "", &ConfigError{URL: methodURL, Reason: "build request", Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Add, not Set: repeated names are all sent.
	for _, h := range headers {
		req.Header.Add(h.Key, h.Value)
	}

	return s.do(req)
}

func (s *HTTPSender) do(req *http.Request) (string, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	target := redactURL(req.URL)
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("slack request failed",
			log.String("method", req.Method),
			log.String("url", target),
			log.Err(err),
		)
		return "", &TransportError{Op: "send", Method: req.Method, URL: target, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read", Method: req.Method, URL: target, Err: err}
	}

	s.logger.Debug("slack request",
		log.String("method", req.Method),
		log.String("url", target),
		log.Int("status", resp.StatusCode),
		log.Int("bytes", len(b)),
		log.Duration("elapsed", time.Since(start)),
	)

	return string(b), nil
}

// redactURL drops user info and masks any token that was put in the query
// string by hand.
func redactURL(u *url.URL) string {
	c := *u
	if q := c.Query(); q.Has(TokenKey) {
		q.Set(TokenKey, log.RedactString(q.Get(TokenKey)))
		c.RawQuery = q.Encode()
	}
	return c.Redacted()
}
