package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/allowlist"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/logger"
	"github.com/urfave/cli/v3"
)

var (
	// ErrMissingKey is returned when a command needs a key argument
	ErrMissingKey = errors.New("missing key argument")
	// ErrKeyNotAllowed is returned by check for unknown keys
	ErrKeyNotAllowed = errors.New("API key is not in the allow list")
)

// RunnerOpts configures a Runner
type RunnerOpts struct {
	Output io.Writer
	Logger coreport.Logger
}

// Runner holds the command actions
type Runner struct {
	output io.Writer
	logger coreport.Logger
}

// NewRunner creates a Runner. Output defaults to stdout and the logger to a
// console zap logger on stderr.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{
		output: opts.Output,
		logger: opts.Logger,
	}
}

func (r *Runner) allowList(cmd *cli.Command) *allowlist.FileAllowList {
	return allowlist.NewFileAllowList(cmd.String("file"), r.loggerFor(cmd))
}

func (r *Runner) loggerFor(cmd *cli.Command) coreport.Logger {
	if cmd.Bool("quiet") {
		return logger.NewNoopLogger()
	}
	if r.logger != nil {
		return r.logger
	}

	l, err := logger.NewZapLogger(logger.Options{Level: "info", Format: "console", Output: "stderr"})
	if err != nil {
		return logger.NewNoopLogger()
	}
	r.logger = l
	return l
}

// Generate prints a fresh key, optionally adding it to the allow-list
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	key, err := entity.GenerateAPIKey(cmd.Int("length"))
	if err != nil {
		return err
	}

	if cmd.Bool("add") {
		if _, err := r.allowList(cmd).Add(ctx, key); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(r.output, key)
	return err
}

// Add stores the key argument
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	key, err := keyArg(cmd)
	if err != nil {
		return err
	}

	added, err := r.allowList(cmd).Add(ctx, key)
	if err != nil {
		return err
	}

	msg := "API key already in the allow list"
	if added {
		msg = "API key added to the allow list"
	}
	_, err = fmt.Fprintln(r.output, msg)
	return err
}

// Check fails with ErrKeyNotAllowed unless the key argument is allowed
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	key, err := keyArg(cmd)
	if err != nil {
		return err
	}

	allowed, err := r.allowList(cmd).Contains(ctx, key)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrKeyNotAllowed
	}

	_, err = fmt.Fprintln(r.output, "API key is allowed")
	return err
}

// List prints the allowed keys, one per line
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	keys, err := r.allowList(cmd).List(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if _, err := fmt.Fprintln(r.output, key); err != nil {
			return err
		}
	}
	return nil
}

func keyArg(cmd *cli.Command) (string, error) {
	key := strings.TrimSpace(cmd.Args().First())
	if key == "" {
		return "", ErrMissingKey
	}
	return key, nil
}
