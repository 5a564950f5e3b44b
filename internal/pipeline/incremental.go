package pipeline

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aThornes/instagram-stats/internal/source"
	"github.com/aThornes/instagram-stats/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	FromCache bool
}

// GetStatsData returns the aggregate for dir, preferring the cache.
//
// A cached aggregate is returned as-is without looking at the archives, even if they have
// changed since it was written. On a miss every archive is parsed and the result is
// written back to st before returning.
func GetStatsData(st store.Store, dir string, cls source.Classifier, progressFn ProgressFunc) (*CachedLoadResult, error) {
	cached, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if cached != nil {
		log.Info().Str("path", st.Path()).Msg("using cached aggregated stats")
		return &CachedLoadResult{
			LoadResult: LoadResult{Stats: *cached},
			FromCache:  true,
		}, nil
	}

	result, err := Load(dir, cls, progressFn)
	if err != nil {
		return nil, err
	}

	for _, yt := range YearTotals(result.Stats.MonthlyStats) {
		log.Info().Int("year", yt.Year).Int("messages", yt.Messages).Msg("messages by year")
	}

	if err := st.Save(&result.Stats); err != nil {
		return nil, fmt.Errorf("writing cache: %w", err)
	}
	log.Info().Str("path", st.Path()).Msg("cached aggregated stats")

	return &CachedLoadResult{LoadResult: *result}, nil
}
