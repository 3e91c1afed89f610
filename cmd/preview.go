package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and answer problems on stdin (no database)",
	Long: `Generate problems for an operation and difficulty and answer them line by line.

This is a stateless developer tool: nothing is timed or saved. Every generated
problem is validated, and with --list the problems are printed with answers.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("op", "o", "mixed", "Operation: add, sub, mul, div or mixed")
	previewCmd.Flags().StringP("difficulty", "d", "easy", "Difficulty: easy, medium or hard")
	previewCmd.Flags().IntP("count", "n", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("list", false, "Print problems with answers instead of asking")
}

func runPreview(cmd *cobra.Command, args []string) error {
	mode, d, err := selectionFlags(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", count)
	}
	list, _ := cmd.Flags().GetBool("list")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen := problemgen.New(newRand(cfg, logging.Discard()))

	return preview(cmd.InOrStdin(), cmd.OutOrStdout(), gen, mode, d, count, list)
}

func preview(in io.Reader, out io.Writer, gen problemgen.Generator, mode problemgen.OpMode, d problemgen.Difficulty, count int, list bool) error {
	fmt.Fprintf(out, "%s, %s: %d problems\n\n", mode.Label(), d.Label(), count)

	scanner := bufio.NewScanner(in)
	var correct, answered int

	for i := 1; i <= count; i++ {
		p := problemgen.ForMode(gen, mode, d)
		if err := problemgen.Validate(p, d); err != nil {
			return fmt.Errorf("problem %d (%s): %w", i, p.Solution(), err)
		}

		if list {
			fmt.Fprintf(out, "%3d. %s\n", i, p.Solution())
			continue
		}

		fmt.Fprintf(out, "── Problem %d/%d ──\n%s\nYour answer: ", i, count, p.Text())
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}

		answered++
		if p.Check(problemgen.ParseAnswer(input)) {
			correct++
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. %s\n", p.Solution())
		}
		fmt.Fprintln(out)
	}

	if !list {
		fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, answered)
	}
	return nil
}
