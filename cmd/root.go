package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aThornes/instagram-stats/internal/config"
	"github.com/aThornes/instagram-stats/internal/pipeline"
	"github.com/aThornes/instagram-stats/internal/source"
	"github.com/aThornes/instagram-stats/internal/store"
	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

var (
	flagMessageDir   string
	flagStatsDir     string
	flagVideoDir     string
	flagCacheDir     string
	flagCacheBackend string
	flagNoCache      bool
	flagQuiet        bool
	flagVerbose      bool
)

// cfg is the loaded config with flag overrides applied in PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "igstats",
	Short:             "Instagram chat history statistics",
	Long:              "Parse exported Instagram chat archives into monthly message, reel, reaction and call statistics.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	def := config.DefaultConfig().General

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagMessageDir, "messages-dir", "d", def.MessageDir, "Directory holding the exported message archives")
	pf.StringVar(&flagStatsDir, "stats-dir", def.StatsDir, "Directory for generated charts")
	pf.StringVar(&flagVideoDir, "video-dir", def.VideoDir, "Directory for isolated video chat logs")
	pf.StringVar(&flagCacheDir, "cache-dir", def.CacheDir, "Directory for the aggregated stats cache")
	pf.StringVar(&flagCacheBackend, "cache-backend", def.CacheBackend, "Cache backend (json or sqlite)")
	pf.BoolVar(&flagNoCache, "no-cache", false, "Clear the cache and reparse every archive")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "clear-cache" {
			name = "no-cache"
		}
		return pflag.NormalizedName(name)
	})
}

// prepare configures logging, loads the config file and lets explicit flags override it.
func prepare(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	switch {
	case flagVerbose:
		level = zerolog.DebugLevel
	case flagQuiet:
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	loaded, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("ignoring config file")
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	override("messages-dir", &cfg.General.MessageDir, flagMessageDir)
	override("stats-dir", &cfg.General.StatsDir, flagStatsDir)
	override("video-dir", &cfg.General.VideoDir, flagVideoDir)
	override("cache-dir", &cfg.General.CacheDir, flagCacheDir)
	override("cache-backend", &cfg.General.CacheBackend, flagCacheBackend)

	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

// loadStats is the shared data loading path used by the report commands.
func loadStats(progressFn pipeline.ProgressFunc) (*pipeline.CachedLoadResult, error) {
	st, err := store.Open(cfg.General.CacheBackend, cfg.General.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer func() { _ = st.Close() }()

	if flagNoCache {
		if err := st.Clear(); err != nil {
			return nil, fmt.Errorf("clearing cache: %w", err)
		}
		log.Info().Str("path", st.Path()).Msg("cleared cache")
	}

	cls := source.NewClassifier(config.TimezoneOffsetHours(cfg))
	return pipeline.GetStatsData(st, cfg.General.MessageDir, cls, progressFn)
}

// progressLogger reports parsing progress every 25 files at debug level.
func progressLogger(current, total int) {
	if current%25 == 0 || current == total {
		log.Debug().Int("current", current).Int("total", total).Msg("parsing archives")
	}
}
