package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"figma-asset-downloader/core/database"
	"figma-asset-downloader/feature/history"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyLimit int

var (
	statusStyles = map[history.Status]lipgloss.Style{
		history.StatusDownloaded: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		history.StatusFailed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		history.StatusSkipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// historyCmd lists recorded downloads.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the latest recorded downloads",
	Long:  `Lists the downloads recorded in the configured database, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		repo := history.NewRepository(db)
		if err := repo.Migrate(cmd.Context()); err != nil {
			return err
		}

		records, err := repo.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		printHistory(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "Number of records to show")
	RootCmd.AddCommand(historyCmd)
}

func printHistory(w io.Writer, records []history.DownloadRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No downloads recorded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSTATUS\tPATH\tSIZE")
	for _, r := range records {
		status := string(r.Status)
		if style, ok := statusStyles[r.Status]; ok {
			status = style.Render(status)
		}
		size := humanize.Bytes(uint64(r.Bytes))
		if r.Error != "" {
			size = r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", humanize.Time(r.CreatedAt), status, r.Path, size)
	}
	_ = tw.Flush()
}
