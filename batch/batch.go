// SPDX-License-Identifier: MIT

// Package batch highlights many sources concurrently on a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/registry"
	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

type (
	// Job is a source to highlight.
	Job struct {
		Name   string
		Source string

		// Lexer selects the Definition explicitly as "tag?key=value"; Hints are guessed from
		// otherwise.
		Lexer string
		Hints registry.Hints
	}

	// Result is a Job's outcome; Err is set when the Job alone failed.
	Result struct {
		Job        Job
		Definition *lexer.Definition
		Tokens     []token.Token
		Err        error
	}

	// Config defines configuration options for Highlight.
	Config struct {
		Logger   logrus.FieldLogger
		Workers  int
		Coalesce bool
		Debug    bool
	}

	// Option defines the Highlight functional option type.
	Option func(*Config)
)

// cancelCheckInterval is the number of tokens lexed between context checks.
const cancelCheckInterval = 256

// Batch errors.
var (
	ErrNoLexer = errors.New("no lexer matches")
	ErrPanic   = errors.New("highlighting panicked")
)

// DefaultConfig configures Highlight's Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithWorkers configures the worker pool size.
func WithWorkers(workers int) Option { return func(c *Config) { c.Workers = workers } }

// WithCoalesce merges adjacent tokens of the same Kind.
func WithCoalesce(coalesce bool) Option { return func(c *Config) { c.Coalesce = coalesce } }

// WithDebug traces every scan.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// Highlight lexes jobs concurrently, returning one Result per Job in Job order.
//
// A failing Job only marks its own Result; err joins the failures. Cancelling ctx stops the
// outstanding Jobs.
func Highlight(ctx context.Context, reg *registry.Registry, jobs []Job, opts ...Option) (results []Result, err error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	results = make([]Result, len(jobs))
	if len(jobs) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	done := make(chan bool, len(jobs))
	errChan := make(chan error, len(jobs))

	var (
		wg        sync.WaitGroup
		completed types.SafeCounter
	)

	for index := range jobs {
		index := index

		wg.Add(1)
		task := func() {
			defer wg.Done()

			results[index] = highlight(ctx, reg, jobs[index], cfg)
			if e := results[index].Err; e != nil {
				errChan <- fmt.Errorf("%s: %w", jobs[index].Name, e)
				return
			}
			completed.Inc()
			done <- true
		}

		if submitErr := pool.Submit(task); submitErr != nil {
			wg.Done()
			results[index] = Result{Job: jobs[index], Err: submitErr}
			errChan <- fmt.Errorf("%s: %w", jobs[index].Name, submitErr)
		}
	}

	err = types.MonitorChannels(ctx, len(jobs), done, errChan, "job")
	wg.Wait()

	cfg.Logger.WithField("workers", cfg.Workers).Debugf("highlighted %d/%d jobs", completed.Value(), len(jobs))

	return
}

func highlight(ctx context.Context, reg *registry.Registry, job Job, cfg *Config) (res Result) {
	res.Job = job

	defer func() {
		if rec := recover(); rec != nil {
			res.Tokens, res.Err = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	if res.Err = ctx.Err(); res.Err != nil {
		return
	}

	var options types.Options
	if res.Definition, options, res.Err = resolve(reg, job); res.Err != nil {
		return
	}

	l := lexer.New(res.Definition, lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug), lexer.WithOptions(options))
	it := l.Lex(job.Source)

	res.Tokens = make([]token.Token, 0)
	for tok, ok := it.Next(); ok; tok, ok = it.Next() {
		res.Tokens = append(res.Tokens, tok)

		if len(res.Tokens)%cancelCheckInterval == 0 {
			if res.Err = ctx.Err(); res.Err != nil {
				res.Tokens = nil
				return
			}
		}
	}

	if cfg.Coalesce {
		res.Tokens = token.Coalesce(res.Tokens)
	}

	return
}

// resolve selects a Job's Definition & lexer options.
func resolve(reg *registry.Registry, job Job) (def *lexer.Definition, options types.Options, err error) {
	if job.Lexer != "" {
		return reg.FindFancy(job.Lexer)
	}

	hints := job.Hints
	if hints.Source == "" {
		hints.Source = job.Source
	}

	var ok bool
	if def, ok = reg.Best(hints); !ok {
		err = ErrNoLexer
	}

	return
}
