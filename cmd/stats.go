package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best scores per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.BestStatsRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load best scores: %w", err)
		}
		return printStats(cmd.OutOrStdout(), records)
	},
}

func printStats(w io.Writer, records map[string]store.BestStats) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Difficulty", "Correct", "Best streak", "Avg time").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, d := range problemgen.Difficulties {
		rec, ok := records[d.Key()]
		if !ok {
			t.Row(d.Label(), "-", "-", "-")
			continue
		}
		t.Row(
			d.Label(),
			fmt.Sprintf("%d/%d", rec.Correct, rec.Total),
			strconv.FormatUint(uint64(rec.Streak), 10),
			session.FormatMs(rec.AvgMs),
		)
	}

	_, err := lipgloss.Fprintln(w, t.String())
	return err
}
