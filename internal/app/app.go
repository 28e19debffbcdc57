// Package app runs the demo sequence: build a user, do the arithmetic,
// write the greeting and summary lines.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"greeter-demo/internal/config"
	"greeter-demo/internal/logging"
	"greeter-demo/internal/mathx"
	"greeter-demo/internal/models"
)

// App holds everything a run needs. Program output goes to out (stdout in
// the binary, a buffer in tests); diagnostics go to the logger only.
type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	user   models.User
}

// NewApp validates the configured status label and builds the demo user.
// An unrecognized label is a configuration error and fails construction.
func NewApp(cfg *config.Config, log logging.Logger, out io.Writer) (*App, error) {
	status, err := models.ParseStatus(cfg.StatusLabel)
	if err != nil {
		return nil, fmt.Errorf("status label %q: %w", cfg.StatusLabel, err)
	}

	return &App{
		config: cfg,
		log:    log.With("run_id", uuid.NewString()),
		out:    out,
		user:   models.NewUser(cfg.GreetName, status),
	}, nil
}

// Greet returns the greeting line for name.
func Greet(name string) string {
	return "Hello, " + name
}

// Run executes the fixed sequence once: add 2 and 3, start the counter at
// the configured value, increment it once, then write the greeting and the
// summary line.
func (a *App) Run(ctx context.Context) {
	total := mathx.Add(2, 3)

	counter := mathx.NewCounter(a.config.CounterStart)
	counter.Inc()

	fmt.Fprintln(a.out, Greet(a.user.Name))
	fmt.Fprintf(a.out, "total=%d, pi=%v, counter=%d\n", total, mathx.Pi, counter.Value())

	a.log.Debug(ctx, "run complete",
		"user", a.user.Name,
		"status", a.user.Status,
		"total", total,
		"counter", counter.Value(),
	)
}
