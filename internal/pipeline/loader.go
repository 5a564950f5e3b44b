package pipeline

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/source"
)

// LoadResult holds the output of the full parsing pipeline.
type LoadResult struct {
	Stats         model.AggregatedStats
	TotalFiles    int
	ParsedFiles   int
	FileErrors    int
	Blocks        int
	Conversations int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// ProcessFile parses one archive and aggregates its messages.
func ProcessFile(df source.DiscoveredFile, cls source.Classifier) (model.FileStats, int, error) {
	pr := source.ParseFile(df, cls)
	if pr.Err != nil {
		return model.FileStats{}, 0, pr.Err
	}
	return AggregateMessages(pr.Messages), pr.Blocks, nil
}

// Load discovers every archive under dir and folds them into one aggregate.
//
// Files are processed one at a time, so at most one archive is held in memory. A file
// that cannot be read is logged and skipped; the run continues with the rest.
func Load(dir string, cls source.Classifier, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	result := &LoadResult{
		Stats:         model.AggregatedStats{MonthlyStats: make(model.MonthlyStats)},
		TotalFiles:    len(files),
		Conversations: source.CountConversations(files),
	}

	for i, df := range files {
		fs, blocks, err := ProcessFile(df, cls)
		if err != nil {
			result.FileErrors++
			log.Warn().Err(err).Str("file", df.RelPath).Msg("skipping archive")
		} else {
			result.ParsedFiles++
			result.Blocks += blocks
			result.Stats = MergeFile(result.Stats, fs)
			log.Info().
				Str("file", df.RelPath).
				Int("index", i+1).
				Int("total", len(files)).
				Int("messages", fs.TotalMessages).
				Msg("processed archive")
		}

		if progressFn != nil {
			progressFn(i+1, len(files))
		}
	}

	return result, nil
}
