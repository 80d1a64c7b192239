package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/bft-labs/slackweb/pkg/log"
	"github.com/bft-labs/slackweb/pkg/transport"
)

// DefaultBaseURL is the prefix every method name is appended to.
const DefaultBaseURL = "https://slack.com/api/"

// Client calls Slack web API methods through a RequestSender.
type Client struct {
	sender  transport.RequestSender
	baseURL string
	logger  log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
// A trailing slash is added when missing.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u == "" {
			return
		}
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithLogger sets the logger used for API-level diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Client sending requests through sender.
func New(sender transport.RequestSender, opts ...Option) *Client {
	c := &Client{
		sender:  sender,
		baseURL: DefaultBaseURL,
		logger:  log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MethodURL returns the full URL for an API method name.
func (c *Client) MethodURL(method string) string {
	return c.baseURL + method
}

func (c *Client) get(ctx context.Context, method, token string, params transport.Params, v interface{}) error {
	params = params.AddIfSet(transport.TokenKey, token)

	body, err := c.sender.Get(ctx, c.MethodURL(method), params)
	if err != nil {
		return err
	}
	return c.decode(method, body, v)
}

func (c *Client) post(ctx context.Context, method, token string, form transport.Params, v interface{}) error {
	var headers []transport.Pair
	if token != "" {
		headers = append(headers, transport.Pair{Key: "Authorization", Value: "Bearer " + token})
	}

	body, err := c.sender.Post(ctx, c.MethodURL(method), form, headers)
	if err != nil {
		return err
	}
	return c.decode(method, body, v)
}

// decode checks the {"ok": ..., "error": ...} envelope before decoding the
// full reply into v.
func (c *Client) decode(method, body string, v interface{}) error {
	var env slack.SlackResponse
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	if !env.Ok {
		c.logger.Debug("slack method returned an error",
			log.String("method", method),
			log.String("error", env.Error),
		)
		return &Error{Method: method, Code: env.Error, Warnings: env.ResponseMetadata.Warnings}
	}

	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}
