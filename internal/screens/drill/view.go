package drill

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const labelWidth = 12

func (s *DrillScreen) viewMenu(st drill.Menu, width, height int) string {
	cw := components.ContentWidth(width)

	rows := []string{
		theme.Title.Render("Choose your drill"),
		"",
		components.NewSelector("Operation", s.machine.Mode().Label(), st.Field == drill.FieldOperation).View(labelWidth),
		components.NewSelector("Difficulty", s.machine.Difficulty().Label(), st.Field == drill.FieldDifficulty).View(labelWidth),
		"",
		components.NewButton("Start", st.Field == drill.FieldStart).View(cw - 8),
		components.NewButton("Best Scores", st.Field == drill.FieldBestScores).View(cw - 8),
	}

	if !layout.IsCompactHeight(height) {
		rows = append(rows, "", theme.Hint.Render(bestLine(s.machine.Difficulty(), s.machine.Best(s.machine.Difficulty()))))
	}

	return components.Centered(components.Card(strings.Join(rows, "\n"), cw), width, height)
}

func bestLine(d problemgen.Difficulty, best *store.BestStats) string {
	if best == nil {
		return fmt.Sprintf("No best yet on %s", d.Label())
	}
	return fmt.Sprintf("Best on %s: %d/%d, streak %d, %s avg",
		d.Label(), best.Correct, best.Total, best.Streak, session.FormatMs(best.AvgMs))
}

func (s *DrillScreen) progressBar(width int) string {
	cur, total := s.machine.Progress()
	return components.NewProgressBar("Problem", cur, total, width).View()
}

func (s *DrillScreen) viewPlaying(st drill.Playing, width, height int) string {
	cw := components.ContentWidth(width)

	answer := st.Buffer + "_"
	rows := []string{
		s.progressBar(cw - 6),
		"",
		theme.Problem.Render(st.Problem.Text()),
		"",
		theme.Body.Render("> ") + theme.Answer.Render(answer),
	}
	return components.Centered(components.Card(strings.Join(rows, "\n"), cw), width, height)
}

func (s *DrillScreen) viewFeedback(st drill.Feedback, width, height int) string {
	cw := components.ContentWidth(width)

	var verdict string
	if st.Turn.Correct {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.") + "\n\n" +
			theme.Body.Render(st.Turn.Problem.Solution())
	}

	rows := []string{
		s.progressBar(cw - 6),
		"",
		verdict,
		"",
		theme.Hint.Render(fmt.Sprintf("You answered %s in %s",
			problemgen.FormatAnswer(st.Turn.UserAnswer),
			session.FormatMs(uint32(st.Turn.Elapsed.Milliseconds())))),
	}
	return components.Centered(components.Card(strings.Join(rows, "\n"), cw), width, height)
}

func (s *DrillScreen) viewResults(st drill.Results, width, height int) string {
	sum := st.Summary
	cw := components.ContentWidth(width)

	header := []string{
		theme.Title.Render(fmt.Sprintf("%d%%", sum.Percent())),
		theme.Body.Render(fmt.Sprintf("Score %d/%d   Best streak %d   Avg %s",
			sum.Correct, sum.Total, sum.BestStreak, session.FormatMs(sum.AvgMs))),
	}
	if sum.NewBest {
		header = append(header, "", theme.NewBest.Render("NEW BEST"))
	}

	top := components.Card(strings.Join(header, "\n"), cw)

	tableHeight := height - lipgloss.Height(top) - 2
	if tableHeight < 3 {
		tableHeight = 3
	}
	review := reviewTable(sum.Review, tableHeight)

	return components.Centered(lipgloss.JoinVertical(lipgloss.Center, top, "", review.View()), width, height)
}

// reviewTable lists every turn of a finished session.
func reviewTable(turns []session.Turn, height int) table.Model {
	rows := make([]table.Row, 0, len(turns))
	for i, t := range turns {
		mark := "✗"
		if t.Correct {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			t.Problem.Text(),
			problemgen.FormatAnswer(t.UserAnswer),
			strconv.Itoa(int(t.Problem.Answer)),
			mark,
		})
	}

	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Problem", Width: 14},
		{Title: "Yours", Width: 8},
		{Title: "Answer", Width: 8},
		{Title: "", Width: 2},
	}
	width := 0
	for _, c := range cols {
		width += c.Width + 2 // cell padding
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(min(height, len(rows)+1)),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t
}

func (s *DrillScreen) viewBestScores(st drill.BestScores, width, height int) string {
	cw := components.ContentWidth(width)

	rows := []string{theme.Title.Render("Best Scores"), ""}
	for _, r := range st.Records {
		label := lipgloss.NewStyle().Width(labelWidth + 4).Render(r.Difficulty.Label())
		if r.Stats == nil {
			rows = append(rows, theme.Body.Render(label)+theme.Hint.Render("no record"))
			continue
		}
		rows = append(rows, theme.Body.Render(label)+theme.Answer.Render(fmt.Sprintf(
			"%d/%d  streak %d  %s avg",
			r.Stats.Correct, r.Stats.Total, r.Stats.Streak, session.FormatMs(r.Stats.AvgMs))))
	}
	return components.Centered(components.Card(strings.Join(rows, "\n"), cw), width, height)
}
