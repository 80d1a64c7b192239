// Package log provides the logging abstraction used by slackweb.
//
// Senders and API clients accept a Logger so callers can route request
// diagnostics into their own logging stack. A zerolog adapter and a no-op
// logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(zerolog.DebugLevel)
//	sender := transport.NewHTTPSender(http.DefaultClient, logger)
//
// # Secrets
//
// Never pass API tokens as plain fields. Use Redact, which keeps only a short
// prefix so log lines can still tell bot (xoxb-) and user (xoxp-) tokens
// apart:
//
//	logger.Info("configuration", log.Redact("token", cfg.Token))
package log
