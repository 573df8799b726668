// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/kmerge/bench"
)

// Progress prints the per-scale line emitted while the sweep runs.
func Progress(w io.Writer, rec bench.RunRecord) {
	fmt.Fprintf(w, "n = %d, Total merge cost = %d, Experimental time = %d ns\n",
		rec.N, rec.Cost, rec.Elapsed.Nanoseconds())
}

// Console renders the result table and fit summary to W.
type Console struct {
	W io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console { return &Console{W: w} }

// Render implements Sink.
func (c *Console) Render(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}

	// The renderer inspects W itself, so piping to a file drops colors.
	r := lipgloss.NewRenderer(c.W)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	mutedStyle := r.NewStyle().Foreground(lipgloss.Color("#2C4A54"))

	rows := make([][]string, s.Len())
	for i := range s.N {
		rows[i] = []string{
			humanize.Comma(int64(s.N[i])),
			humanize.Comma(s.Costs[i]),
			humanize.Comma(int64(math.Round(s.Measured[i]))),
			humanize.Comma(int64(math.Round(s.Theoretical[i]))),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("n", "total cost", "experimental (ns)", "theoretical (ns)").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("variant: %s  fit: %s", s.Variant, s.Policy)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Scaling constant (c) = %.6f\n", s.C)
	fmt.Fprintf(&b, "R² = %.4f\n", s.R2)
	fmt.Fprintf(&b, "Theoretical raw: %s\n", floats(s.Raw))
	fmt.Fprintf(&b, "Theoretical scaled: %s\n", floats(s.Theoretical))

	_, err := io.WriteString(c.W, b.String())

	return err
}

// floats formats a float slice as [a, b, c] with two decimals.
func floats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.2f", x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
