// Package transport provides the request-sending capability behind every
// Slack web API method.
//
// A RequestSender issues authenticated GET and form-encoded POST requests to
// a method URL and hands back the raw response body. Decoding Slack's JSON
// envelope is left to the caller (see package api).
//
// # Usage
//
//	sender := transport.NewHTTPSender(&http.Client{Timeout: 10 * time.Second}, logger)
//
//	body, err := sender.Get(ctx, "https://slack.com/api/conversations.history",
//	    transport.Params{
//	        {Key: "channel", Value: "C123"},
//	        {Key: "token", Value: token},
//	    })
//
// # Tokens
//
// A "token" entry passed to Get is never written to the query string; it is
// sent as an "Authorization: Bearer" header instead. When several token
// entries are given the last one wins and the others are dropped. A token
// entry with an empty value still produces the header.
//
// # Errors
//
// A method URL that is not absolute yields a *ConfigError before any network
// I/O. Failures to send the request or read the response yield a
// *TransportError. HTTP error statuses are not errors at this layer: the
// body is returned as-is for the caller to interpret.
//
// # Custom Senders
//
// Implement RequestSender to put another backend behind the API functions:
// a different HTTP stack, a recorder for tests (see transporttest), or a
// decorator such as TracingSender.
package transport
