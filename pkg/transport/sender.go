package transport

import (
	"context"
	"net/url"
	"strings"
)

// TokenKey is the parameter key promoted to a bearer Authorization header.
const TokenKey = "token"

// RequestSender sends requests to Slack web API methods.
// Implementations must be safe for concurrent use.
type RequestSender interface {
	// Get sends a GET request to methodURL. Params other than "token" are
	// appended to the query string; the token becomes a bearer header.
	Get(ctx context.Context, methodURL string, params []Pair) (string, error)

	// Post sends form as an application/x-www-form-urlencoded body to
	// methodURL, adding every entry of headers to the request.
	Post(ctx context.Context, methodURL string, form []Pair, headers []Pair) (string, error)
}

// Pair is a single key/value entry of a parameter or header list.
type Pair struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Keys may repeat.
type Params []Pair

// Add appends a pair and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, Pair{Key: key, Value: value})
}

// AddIfSet appends a pair only when value is not empty.
func (p Params) AddIfSet(key, value string) Params {
	if value == "" {
		return p
	}
	return p.Add(key, value)
}

// Encode encodes the pairs in "URL encoded" form, preserving their order.
// url.Values.Encode sorts by key, which would reorder the list.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, kv := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.Value))
	}
	return sb.String()
}

// SplitToken partitions params into the bearer token and the remaining
// parameters, which keep their relative order. found reports whether any
// token entry was present, including an empty one. With several token
// entries the last one is returned and dropped counts the discarded ones.
func SplitToken(params []Pair) (token string, found bool, rest Params, dropped int) {
	for _, kv := range params {
		if kv.Key != TokenKey {
			rest = append(rest, kv)
			continue
		}
		if found {
			dropped++
		}
		token, found = kv.Value, true
	}
	return token, found, rest, dropped
}

var (
	_ RequestSender = (*HTTPSender)(nil)
	_ RequestSender = (*TracingSender)(nil)
)
