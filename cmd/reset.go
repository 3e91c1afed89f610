package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored best scores",
	Long:  "Delete the best score for each --difficulty given, or for every difficulty when none is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, _ := cmd.Flags().GetStringSlice("difficulty")
		keys, err := difficultyKeys(vals)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.BestStatsRepo().Reset(cmd.Context(), keys...); err != nil {
			return err
		}

		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all best scores.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared best scores for %v.\n", keys)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().StringSliceP("difficulty", "d", nil, "Difficulty to clear: easy, medium or hard (repeatable)")
}

// difficultyKeys validates difficulty names and returns their store keys.
func difficultyKeys(vals []string) ([]string, error) {
	keys := make([]string, 0, len(vals))
	for _, v := range vals {
		d, err := problemgen.ParseDifficulty(v)
		if err != nil {
			return nil, fmt.Errorf("invalid --difficulty: %w", err)
		}
		keys = append(keys, d.Key())
	}
	return keys, nil
}
