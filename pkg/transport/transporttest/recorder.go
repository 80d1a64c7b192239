// Package transporttest provides a RequestSender test double.
package transporttest

import (
	"context"
	"net/http"
	"sync"

	"github.com/bft-labs/slackweb/pkg/transport"
)

// Call is a single request seen by a Recorder.
type Call struct {
	Method  string
	URL     string
	Params  []transport.Pair
	Headers []transport.Pair
}

// Response is what a Recorder answers with.
type Response struct {
	Body string
	Err  error
}

// Recorder implements transport.RequestSender without touching the network.
// Responses are keyed by method URL; Default is used when no key matches.
type Recorder struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]Response

	Default Response
}

var _ transport.RequestSender = (*Recorder)(nil)

// NewRecorder returns a Recorder answering every call with body.
func NewRecorder(body string) *Recorder {
	return &Recorder{Default: Response{Body: body}}
}

// Respond registers a response for methodURL.
func (r *Recorder) Respond(methodURL string, resp Response) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responses == nil {
		r.responses = make(map[string]Response)
	}
	r.responses[methodURL] = resp
}

// Get implements transport.RequestSender.
func (r *Recorder) Get(_ context.Context, methodURL string, params []transport.Pair) (string, error) {
	return r.record(Call{Method: http.MethodGet, URL: methodURL, Params: clone(params)})
}

// Post implements transport.RequestSender.
func (r *Recorder) Post(_ context.Context, methodURL string, form []transport.Pair, headers []transport.Pair) (string, error) {
	return r.record(Call{Method: http.MethodPost, URL: methodURL, Params: clone(form), Headers: clone(headers)})
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call, or false if there was none.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

func (r *Recorder) record(c Call) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, c)

	resp, ok := r.responses[c.URL]
	if !ok {
		resp = r.Default
	}
	return resp.Body, resp.Err
}

func clone(p []transport.Pair) []transport.Pair {
	if p == nil {
		return nil
	}
	out := make([]transport.Pair, len(p))
	copy(out, p)
	return out
}
