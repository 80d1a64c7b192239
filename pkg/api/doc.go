// Package api exposes Slack web API methods as typed calls on top of a
// transport.RequestSender.
//
// Each method builds its parameter list, hands it to the sender and decodes
// the JSON reply into github.com/slack-go/slack types. A reply with
// "ok": false is returned as an *Error; failures of the sender itself
// (*transport.TransportError, *transport.ConfigError) are passed through
// unchanged so callers can tell the two apart.
//
// Pagination is not handled: cursors are passed through, and
// NextCursor on the response tells the caller whether to ask again.
package api
