package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aThornes/instagram-stats/internal/cli"
	"github.com/aThornes/instagram-stats/internal/isolate"
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Copy archives keeping only video chat start and end entries",
	RunE:  runVideo,
}

func init() {
	rootCmd.AddCommand(videoCmd)
}

func runVideo(_ *cobra.Command, _ []string) error {
	sum, err := isolate.Dir(cfg.General.MessageDir, cfg.General.VideoDir)
	if err != nil {
		return err
	}

	if sum.Files == 0 {
		fmt.Println(cli.Error("Unable to find any messages. Ensure messageFiles directory is populated."))
		return nil
	}

	fmt.Println(cli.Done(fmt.Sprintf("Isolated %s video chat entries from %d of %d archives into %s",
		cli.FormatNumber(int64(sum.Calls)), sum.Written, sum.Files, cfg.General.VideoDir)))
	if sum.Skipped > 0 {
		fmt.Println(cli.Muted(fmt.Sprintf("  %d archives skipped", sum.Skipped)))
	}
	return nil
}
