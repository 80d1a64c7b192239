package transport

import (
	"context"
	"net/http"
	"net/url"
	"path"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "slackweb/transport"

// TracingSender wraps another RequestSender and records a span per call.
// Token values never reach span attributes.
type TracingSender struct {
	next   RequestSender
	tracer trace.Tracer
}

// NewTracingSender wraps next. A nil tracer uses the global provider.
func NewTracingSender(next RequestSender, tracer trace.Tracer) *TracingSender {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &TracingSender{next: next, tracer: tracer}
}

// Get implements RequestSender.
func (t *TracingSender) Get(ctx context.Context, methodURL string, params []Pair) (string, error) {
	_, found, rest, _ := SplitToken(params)

	ctx, span := t.tracer.Start(ctx, "slack.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("slack.method", slackMethod(methodURL)),
			attribute.Int("slack.param_count", len(rest)),
			attribute.Bool("slack.has_token", found),
		),
	)
	defer span.End()

	body, err := t.next.Get(ctx, methodURL, params)
	return body, finishSpan(span, body, err)
}

// Post implements RequestSender.
func (t *TracingSender) Post(ctx context.Context, methodURL string, form []Pair, headers []Pair) (string, error) {
	ctx, span := t.tracer.Start(ctx, "slack.post",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("slack.method", slackMethod(methodURL)),
			attribute.Int("slack.param_count", len(form)),
			attribute.Int("slack.header_count", len(headers)),
		),
	)
	defer span.End()

	body, err := t.next.Post(ctx, methodURL, form, headers)
	return body, finishSpan(span, body, err)
}

func finishSpan(span trace.Span, body string, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("slack.response_bytes", len(body)))
	return nil
}

// slackMethod returns the API method name, e.g. "chat.postMessage".
func slackMethod(methodURL string) string {
	u, err := url.Parse(methodURL)
	if err != nil || u.Path == "" {
		return ""
	}
	return path.Base(u.Path)
}
