// Command rsademo generates one RSA key pair and round-trips random messages
// through it, printing every plaintext, ciphertext and decryption in hex.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/toyrsa-go/pkg/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
	"github.com/hsiuhsiu/toyrsa-go/pkg/rsa"
)

// version is populated at build time via -ldflags "-X main.version=...".
var version = "v0.0.0-in-progress"

type options struct {
	bits     int
	trials   int
	seed     string
	message  string
	attempts int
	verbose  bool
	json     bool
}

func main() {
	failed, err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rsademo:", err)
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("rsademo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.bits, "bits", 32, "bit length of each prime")
	fs.IntVar(&opts.trials, "trials", 10, "number of random messages to round-trip")
	fs.StringVar(&opts.seed, "seed", "", "decimal seed for a reproducible run; empty uses crypto/rand")
	fs.StringVar(&opts.message, "message", "", "decimal message to use instead of random ones")
	fs.IntVar(&opts.attempts, "max-attempts", 0, "cap on every randomized search; 0 is unbounded")
	fs.BoolVar(&opts.verbose, "v", false, "log key generation at debug level")
	fs.BoolVar(&opts.json, "json", false, "emit logs as JSON")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.trials < 1 {
		return options{}, fmt.Errorf("trials must be positive, got %d", opts.trials)
	}
	return opts, nil
}

func newLogger(opts options, stderr io.Writer) logging.Logger {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(stderr, handlerOpts)
	if opts.json {
		handler = slog.NewJSONHandler(stderr, handlerOpts)
	}
	return logging.New(slog.New(handler)).With("run", uuid.NewString())
}

// run returns the number of failed round trips.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 0, err
	}
	logger := newLogger(opts, stderr)
	logger.Info(ctx, "starting", "version", version, "bits", opts.bits, "trials", opts.trials)

	cfg := rsa.Config{MaxAttempts: opts.attempts, Logger: logger}
	if opts.seed != "" {
		seed, err := strconv.ParseUint(opts.seed, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse seed: %w", err)
		}
		cfg.Random = numtheory.NewSeededReader(seed)
	}

	kp, err := cfg.GenerateKeyPair(ctx, opts.bits)
	if err != nil {
		return 0, fmt.Errorf("generate keys: %w", err)
	}
	defer kp.Zeroize()

	n := kp.Public.Modulus
	fmt.Fprintf(stdout, "modulus:    %x\n", n)
	fmt.Fprintf(stdout, "public exp: %x\n", kp.Public.Exponent)

	var fixed *big.Int
	if opts.message != "" {
		m, ok := new(big.Int).SetString(opts.message, 10)
		if !ok {
			return 0, fmt.Errorf("parse message %q", opts.message)
		}
		fixed = m
	}

	sampler := numtheory.Sampler{Random: cfg.Random}
	maxMessage := new(big.Int).Sub(n, big.NewInt(1))
	failed := 0
	for i := 0; i < opts.trials; i++ {
		m := fixed
		if m == nil {
			if m, err = sampler.Intn(big.NewInt(0), maxMessage); err != nil {
				return failed, fmt.Errorf("draw message: %w", err)
			}
		}

		ok, err := roundTrip(stdout, kp, m)
		if err != nil {
			return failed, err
		}
		if !ok {
			failed++
			logger.Error(ctx, "round trip failed", "trial", i)
		}
	}

	logger.Info(ctx, "done", "passed", opts.trials-failed, "failed", failed)
	return failed, nil
}

func roundTrip(w io.Writer, kp *rsa.KeyPair, m *big.Int) (bool, error) {
	c, err := rsa.Encrypt(&kp.Public, m)
	if err != nil {
		return false, err
	}
	got, err := rsa.Decrypt(&kp.Private, c)
	if err != nil {
		return false, err
	}

	ok := got.Cmp(m) == 0
	status := "ok"
	if !ok {
		status = "FAILED"
	}
	fmt.Fprintf(w, "plaintext:  %x\nciphertext: %x\ndecrypted:  %x\nresult:     %s\n", m, c, got, status)
	return ok, nil
}
