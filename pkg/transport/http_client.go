package transport

import "net/http"

// HTTPClient executes the requests built by HTTPSender. The standard
// *http.Client satisfies it; tests substitute a fake that captures the
// request so the bearer header and query can be checked without a server.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
