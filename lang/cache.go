package lang

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// parseCache stores parsed trees keyed by the hash of their source and the
// nesting limit they were parsed with.
//
//nolint:gochecknoglobals
var parseCache sync.Map

// entry tracks the parse of one distinct source.
type entry struct {
	text string
	once sync.Once
	tree any
	err  error
}

// cacheKey returns the parse cache key of text parsed with the given nesting
// limit.
func cacheKey(hash uint64, maxDepth int) string {
	return strconv.FormatUint(hash, 36) + ":" + strconv.Itoa(maxDepth)
}

// ParseToASTCached is [ParseToAST] with a process-wide cache: each distinct
// source is parsed once, even when requested from many goroutines at the
// same time. The returned tree is shared and must not be modified.
func ParseToASTCached(
	ctx context.Context,
	text string,
	opts ...Option,
) (any, error) {
	cfg := makeConfig(opts...)

	hash := xxh3.HashString(text)

	value, hit := parseCache.LoadOrStore(
		cacheKey(hash, cfg.maxDepth),
		&entry{text: text},
	)

	e, ok := value.(*entry)
	if !ok {
		return nil, ErrParse.With(slog.String("issue", "invalid cache entry"))
	}

	cfg.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	// Another source with the same hash owns the entry.
	if e.text != text {
		cfg.logger.DebugContext(ctx, "cache collision",
			slog.String("source_hash", strconv.FormatUint(hash, 16)))

		return ParseToAST(ctx, text, opts...)
	}

	e.once.Do(func() {
		e.tree, e.err = ParseToAST(ctx, text, opts...)
	})

	return e.tree, e.err
}

// ClearCache removes all cached trees.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	parseCache.Clear()
}
