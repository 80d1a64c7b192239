package transport

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrInvalidURL is matched by every *ConfigError.
	ErrInvalidURL = errors.New("transport: invalid method URL")

	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("transport: request failed")
)

// ConfigError reports a method URL that cannot be used. It is returned
// before any request is sent.
type ConfigError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid method URL %q: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid method URL %q: %s", e.URL, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidURL.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidURL }

// TransportError reports that a request could not be sent or its response
// could not be read. Op is "send" or "read".
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// parseMethodURL accepts only absolute URLs with a host.
func parseMethodURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ConfigError{URL: raw, Reason: "parse", Err: err}
	}
	if !u.IsAbs() {
		return nil, &ConfigError{URL: raw, Reason: "missing scheme"}
	}
	if u.Host == "" {
		return nil, &ConfigError{URL: raw, Reason: "missing host"}
	}
	return u, nil
}
