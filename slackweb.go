// Package slackweb is a client for the Slack web API.
//
// The request path is split in two. A transport.RequestSender sends
// authenticated GET and form POST requests and returns raw bodies; package
// api turns method calls into parameter lists and decodes the replies.
// Any RequestSender can back the API client: the HTTP sender built by New,
// a tracing decorator, or a recorder in tests.
//
// Example usage:
//
//	sender := slackweb.New(slackweb.WithTimeout(10 * time.Second))
//	client := slackweb.NewClient(sender)
//
//	resp, err := client.ConversationsHistory(ctx, os.Getenv("SLACK_API_TOKEN"),
//	    api.ConversationsHistoryRequest{Channel: "C09123456"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range resp.Messages {
//	    fmt.Println(m.User, m.Text)
//	}
package slackweb

import (
	"net/http"

	"github.com/bft-labs/slackweb/pkg/api"
	"github.com/bft-labs/slackweb/pkg/log"
	"github.com/bft-labs/slackweb/pkg/transport"
)

// Re-export types from sub-packages for convenient access.
type (
	// RequestSender is the transport capability behind every API method.
	RequestSender = transport.RequestSender

	// Pair is a key/value entry of a parameter or header list.
	Pair = transport.Pair

	// Logger is the structured logging interface.
	Logger = log.Logger
)

// New returns an HTTP-backed RequestSender configured by opts. Each call
// builds a fresh sender; nothing is shared between calls to New. With
// WithTracer the HTTP sender is wrapped in a transport.TracingSender.
func New(opts ...Option) RequestSender {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	client := o.httpClient
	if client == nil {
		client = &http.Client{Timeout: o.timeout}
	}

	sender := transport.NewHTTPSender(client, o.logger, transport.WithUserAgent(o.userAgent))
	if o.tracer != nil {
		return transport.NewTracingSender(sender, o.tracer)
	}
	return sender
}

// NewClient returns an API client using sender.
func NewClient(sender RequestSender, opts ...api.Option) *api.Client {
	return api.New(sender, opts...)
}
