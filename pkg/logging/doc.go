// Package logging provides the structured logging facade used by the RSA
// key generator and the rsademo command.
//
// Logger wraps the context-aware half of log/slog:
//
//	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	logger.Info(ctx, "keys generated", logging.Bits("modulus", n))
//
// New(nil) binds to slog.Default(). Nop() discards everything and is what the
// library uses when no logger is configured.
//
// # Secrets
//
// Private exponents and the primes behind a modulus never go to the log.
// Redacted records that a value was deliberately withheld, and Bits records
// only how large a number is:
//
//	logger.Debug(ctx, "private exponent derived",
//	    logging.Redacted("d"),
//	    logging.Bits("lambda", lambda),
//	)
package logging
