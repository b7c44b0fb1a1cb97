package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/securebyte/securebyte/internal/analyzer"
	"github.com/securebyte/securebyte/internal/chunker"
	"github.com/securebyte/securebyte/internal/dispatch"
	"github.com/securebyte/securebyte/pkg/types"
)

// Pipeline coordinates the full analysis run: chunk -> dispatch -> report.
// It owns no state between invocations; every Run starts from the source
// text alone.
type Pipeline struct {
	chunker    *chunker.Chunker
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
}

// Settings contains pipeline configuration
type Settings struct {
	// LinesPerChunk is the fallback window size (default 200)
	LinesPerChunk int

	// Workers caps concurrent analyses; zero means one task per chunk
	Workers int

	// Persona overrides the default system instruction
	Persona string
}

// New creates a Pipeline around an injected analysis client
func New(client analyzer.Client, set Settings, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if set.LinesPerChunk <= 0 {
		set.LinesPerChunk = chunker.DefaultLinesPerChunk
	}
	return &Pipeline{
		chunker: chunker.NewWithWindow(set.LinesPerChunk),
		dispatcher: dispatch.New(client, dispatch.Config{
			Persona: set.Persona,
			Workers: set.Workers,
		}, logger),
		logger: logger,
	}
}

// RunFile reads one source file and analyzes it. An unreadable file is
// fatal and surfaces immediately, before any chunking happens.
func (p *Pipeline) RunFile(ctx context.Context, path string) (*types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	p.logger.Info("loaded source file",
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	return p.Run(ctx, string(data))
}

// Run chunks the source, fans the chunks out for analysis, and assembles
// the ordered report. Per-chunk failures end up in the report; only a
// report integrity violation is returned as an error.
func (p *Pipeline) Run(ctx context.Context, source string) (*types.Report, error) {
	start := time.Now()

	chunks := p.chunker.Chunk(source)
	p.logger.Info("source chunked", zap.Int("chunks", len(chunks)))
	for _, chunk := range chunks {
		p.logger.Debug("chunk boundary",
			zap.Int("index", chunk.Index),
			zap.String("kind", string(chunk.Kind)),
			zap.String("first_line", chunk.FirstLine()),
			zap.Int("chars", len(chunk.Text)))
	}

	outcomes := p.dispatcher.Analyze(ctx, chunks)

	report, err := dispatch.Build(outcomes, len(chunks))
	if err != nil {
		return nil, fmt.Errorf("assemble report: %w", err)
	}

	p.logger.Info("analysis complete",
		zap.Int("chunks", report.ChunkCount),
		zap.Int("failed", report.FailedCount()),
		zap.Duration("elapsed", time.Since(start)))

	return report, nil
}
