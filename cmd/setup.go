package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aThornes/instagram-stats/internal/config"
	"github.com/aThornes/instagram-stats/internal/source"
	"github.com/aThornes/instagram-stats/internal/store"
	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	next := cfg

	offset := ""
	if next.General.TimezoneOffsetHours != nil {
		offset = strconv.Itoa(*next.General.TimezoneOffsetHours)
	}

	fmt.Println()
	fmt.Println("  Welcome to igstats!")
	if files, err := source.ScanDir(next.General.MessageDir); err == nil && len(files) > 0 {
		fmt.Printf("  Found %d archives in %s (%d conversations)\n",
			len(files), next.General.MessageDir, source.CountConversations(files))
	}
	fmt.Println()

	themes := make([]huh.Option[string], 0, len(theme.Names()))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Message directory").
				Description("Where the exported message_N.html archives live.").
				Value(&next.General.MessageDir).
				Validate(notBlank),
			huh.NewInput().
				Title("Stats directory").
				Description("Generated charts are written here.").
				Value(&next.General.StatsDir).
				Validate(notBlank),
			huh.NewInput().
				Title("Video log directory").
				Value(&next.General.VideoDir).
				Validate(notBlank),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cache directory").
				Value(&next.General.CacheDir).
				Validate(notBlank),
			huh.NewSelect[string]().
				Title("Cache backend").
				Options(
					huh.NewOption("JSON file", store.BackendJSON),
					huh.NewOption("SQLite", store.BackendSQLite),
				).
				Value(&next.General.CacheBackend),
			huh.NewInput().
				Title("Timestamp offset (hours)").
				Description(fmt.Sprintf("Added to every parsed timestamp. Blank uses %d; %s overrides it.",
					config.DefaultTimezoneOffsetHours, config.EnvTimezoneOffset)).
				Value(&offset).
				Validate(validOffset),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&next.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	next.General.TimezoneOffsetHours = nil
	if s := strings.TrimSpace(offset); s != "" {
		n, _ := strconv.Atoi(s)
		next.General.TimezoneOffsetHours = &n
	}

	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `igstats setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validOffset(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("must be a whole number of hours")
	}
	return nil
}
