package slackweb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/bft-labs/slackweb/pkg/api"
	"github.com/bft-labs/slackweb/pkg/transport"
)

func TestNew_endToEnd(t *testing.T) {
	var gotUA, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"ok":true,"messages":[{"type":"message","text":"hello"}]}`)
	}))
	defer server.Close()

	sender := New(WithHTTPClient(server.Client()), WithUserAgent("slackweb-test"))
	client := NewClient(sender, api.WithBaseURL(server.URL))

	resp, err := client.ConversationsHistory(context.Background(), "xoxb-abc", api.ConversationsHistoryRequest{Channel: "C1"})
	if err != nil {
		t.Fatalf("ConversationsHistory() unexpected error: %s", err)
	}

	if len(resp.Messages) != 1 || resp.Messages[0].Text != "hello" {
		t.Fatalf("resp.Messages = %+v", resp.Messages)
	}

	if gotUA != "slackweb-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "slackweb-test")
	}

	if gotAuth != "Bearer xoxb-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer xoxb-abc")
	}
}

func TestNew_timeout(t *testing.T) {
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	sender := New(WithTimeout(50 * time.Millisecond))

	if _, err := sender.Get(context.Background(), server.URL+"/api/auth.test", nil); err == nil {
		t.Fatal("Get() error did not occur as expected")
	}
}

func TestNew_independentInstances(t *testing.T) {
	if New() == New() {
		t.Fatal("New() returned a shared instance")
	}
}

func TestNew_withTracer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer server.Close()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	sender := New(WithHTTPClient(server.Client()), WithTracer(tp.Tracer("test")))
	if _, ok := sender.(*transport.TracingSender); !ok {
		t.Fatalf("New(WithTracer) = %T, want *transport.TracingSender", sender)
	}

	if _, err := sender.Get(context.Background(), server.URL+"/api/auth.test", []Pair{{Key: "token", Value: "xoxb-abc"}}); err != nil {
		t.Fatalf("Get() unexpected error: %s", err)
	}

	spans := sr.Ended()
	if len(spans) != 1 || spans[0].Name() != "slack.get" {
		t.Fatalf("ended spans = %v, want one slack.get", spans)
	}
}

func TestNew_withoutTracer(t *testing.T) {
	if _, ok := New().(*transport.HTTPSender); !ok {
		t.Fatalf("New() = %T, want *transport.HTTPSender", New())
	}
}
