package aggregate

import (
	"context"
	"strings"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/rag/planner"
	"ai-lessonplanner-be/pkg/store"

	"golang.org/x/sync/errgroup"
)

// ContextBlock is the aggregated retrieval output for one named purpose.
type ContextBlock struct {
	Label string
	Text  string
}

// Aggregator executes block specs against the store and folds fragments
// into labeled context blocks.
type Aggregator struct {
	store  store.Store
	logger logger.ILogger
}

func NewAggregator(s store.Store, log logger.ILogger) *Aggregator {
	return &Aggregator{
		store:  s,
		logger: log,
	}
}

// Execute runs every query of every block and returns blocks keyed by
// label. Queries inside a block run concurrently but results keep the
// declaration order, so reversing the input skill order reverses the
// composed block. A store failure aborts the whole set.
func (a *Aggregator) Execute(ctx context.Context, blocks []planner.BlockSpec) (map[string]ContextBlock, error) {
	out := make(map[string]ContextBlock, len(blocks))

	for _, block := range blocks {
		text, err := a.executeBlock(ctx, block)
		if err != nil {
			return nil, err
		}
		out[block.Label] = ContextBlock{Label: block.Label, Text: text}
	}

	return out, nil
}

func (a *Aggregator) executeBlock(ctx context.Context, block planner.BlockSpec) (string, error) {
	results := make([][]store.Document, len(block.Queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range block.Queries {
		g.Go(func() error {
			docs, err := a.store.Query(gctx, q.Collection, q.QueryText, q.Limit, q.Filters...)
			if err != nil {
				return &rag.RetrievalError{Collection: q.Collection, Err: err}
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	// Store order is relevance order; no re-sorting.
	var fragments []string
	for _, docs := range results {
		for _, doc := range docs {
			if doc.Content == "" {
				continue
			}
			fragments = append(fragments, doc.Content)
		}
	}

	a.logger.Debug("aggregate", "context block assembled", map[string]interface{}{
		"label":     block.Label,
		"queries":   len(block.Queries),
		"fragments": len(fragments),
	})

	if len(fragments) == 0 {
		return block.Fallback, nil
	}
	return strings.Join(fragments, "\n\n"), nil
}
