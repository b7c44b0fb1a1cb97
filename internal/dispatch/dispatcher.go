package dispatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/securebyte/securebyte/internal/analyzer"
	"github.com/securebyte/securebyte/pkg/types"
)

// Dispatcher fans an ordered chunk list out to one shared analysis client,
// one concurrent task per chunk, and gathers every terminal outcome. A
// failing chunk never cancels, blocks, or reorders its siblings; Analyze
// returns only after all tasks reach a terminal state.
type Dispatcher struct {
	client  analyzer.Client
	persona string
	workers int
	logger  *zap.Logger
}

// Config contains dispatcher configuration
type Config struct {
	// Persona is the system instruction sent with every chunk. Empty
	// selects analyzer.DefaultPersona.
	Persona string

	// Workers caps the number of in-flight analyses. Zero or negative
	// means one task per chunk with no cap, matching the baseline design;
	// large files may want a bound.
	Workers int
}

// New creates a Dispatcher around a shared analysis client
func New(client analyzer.Client, cfg Config, logger *zap.Logger) *Dispatcher {
	if cfg.Persona == "" {
		cfg.Persona = analyzer.DefaultPersona
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		client:  client,
		persona: cfg.Persona,
		workers: cfg.Workers,
		logger:  logger,
	}
}

// Analyze submits every chunk concurrently and waits for all of them.
// The returned outcomes are unordered with respect to completion; each
// task writes exactly one pre-allocated slot, so no locking is needed
// beyond the join. Ordering is restored later by Build.
func (d *Dispatcher) Analyze(ctx context.Context, chunks []types.Chunk) []types.Outcome {
	outcomes := make([]types.Outcome, len(chunks))

	var g errgroup.Group
	if d.workers > 0 {
		g.SetLimit(d.workers)
	}

	for i := range chunks {
		chunk := chunks[i]
		slot := &outcomes[i]
		g.Go(func() error {
			*slot = d.analyzeChunk(ctx, chunk)
			// Task failures are recorded in the outcome, never returned:
			// returning an error here would make errgroup surface one
			// chunk's failure as the run's.
			return nil
		})
	}

	// Wait for every task regardless of individual failures.
	_ = g.Wait()

	return outcomes
}

// analyzeChunk runs one isolated analysis task to its terminal state
func (d *Dispatcher) analyzeChunk(ctx context.Context, chunk types.Chunk) types.Outcome {
	start := time.Now()
	d.logger.Debug("analyzing chunk",
		zap.Int("index", chunk.Index),
		zap.String("first_line", chunk.FirstLine()),
		zap.Int("token_estimate", chunk.TokenEstimate()))

	analysis, err := d.client.Analyze(ctx, d.persona, chunk.Text)
	if err != nil {
		d.logger.Warn("chunk analysis failed",
			zap.Int("index", chunk.Index),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return types.Outcome{
			ChunkIndex: chunk.Index,
			Status:     types.StatusFailed,
			Text:       fmt.Sprintf("could not analyze chunk: %v", err),
		}
	}

	d.logger.Debug("chunk analyzed",
		zap.Int("index", chunk.Index),
		zap.Duration("elapsed", time.Since(start)))

	return types.Outcome{
		ChunkIndex: chunk.Index,
		Status:     types.StatusOk,
		Text:       analysis,
	}
}
