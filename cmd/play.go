package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the drill menu with an operation and difficulty preselected",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, d, err := selectionFlags(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, runOptions{
			machineOpts: []drill.Option{drill.WithSelection(mode, d)},
			skipSplash:  true,
		})
	},
}

func init() {
	playCmd.Flags().StringP("op", "o", "add", "Operation: add, sub, mul, div or mixed")
	playCmd.Flags().StringP("difficulty", "d", "easy", "Difficulty: easy, medium or hard")
}

// selectionFlags parses --op and --difficulty.
func selectionFlags(cmd *cobra.Command) (problemgen.OpMode, problemgen.Difficulty, error) {
	opVal, _ := cmd.Flags().GetString("op")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	mode, err := problemgen.ParseOpMode(opVal)
	if err != nil {
		return problemgen.OpMode{}, 0, fmt.Errorf("invalid --op: %w", err)
	}
	d, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return problemgen.OpMode{}, 0, fmt.Errorf("invalid --difficulty: %w", err)
	}
	return mode, d, nil
}
