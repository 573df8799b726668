// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Chart marks.
const (
	markMeasured    = 'o'
	markTheoretical = 's'
	markBoth        = '*'
)

// Chart plots measured (o) and scaled theoretical (s) times on a text grid.
// Points sharing a cell are drawn as *.
type Chart struct {
	W      io.Writer
	Width  int // plot columns, default 60
	Height int // plot rows, default 16
}

// NewChart returns a Chart with the default grid size.
func NewChart(w io.Writer) *Chart {
	return &Chart{W: w, Width: 60, Height: 16}
}

// Render implements Sink.
func (c *Chart) Render(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Len() == 0 {
		_, err := fmt.Fprintln(c.W, "(no data)")

		return err
	}
	width, height := c.Width, c.Height
	if width < 2 {
		width = 60
	}
	if height < 2 {
		height = 16
	}

	// Bounds: x over the sweep, y from 0 to the largest time.
	minN, maxN := s.N[0], s.N[0]
	maxY := 0.0
	for i, n := range s.N {
		minN = min(minN, n)
		maxN = max(maxN, n)
		maxY = math.Max(maxY, math.Max(s.Measured[i], s.Theoretical[i]))
	}
	if maxY <= 0 {
		maxY = 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	plot := func(n int, y float64, mark rune) {
		col := 0
		if maxN > minN {
			col = int(math.Round(float64(n-minN) / float64(maxN-minN) * float64(width-1)))
		}
		row := height - 1 - int(math.Round(math.Max(y, 0)/maxY*float64(height-1)))
		switch cur := grid[row][col]; {
		case cur == ' ':
			grid[row][col] = mark
		case cur != mark:
			grid[row][col] = markBoth
		}
	}
	for i, n := range s.N {
		plot(n, s.Theoretical[i], markTheoretical)
		plot(n, s.Measured[i], markMeasured)
	}

	// Left gutter holds the y labels at the top and bottom rows.
	top := humanize.Comma(int64(math.Round(maxY)))
	gutter := len(top)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nTime (ns)\n", Title)
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = top
		case height - 1:
			label = "0"
		}
		fmt.Fprintf(&b, "%*s |%s\n", gutter, label, string(line))
	}
	fmt.Fprintf(&b, "%*s +%s\n", gutter, "", strings.Repeat("-", width))

	left, right := humanize.Comma(int64(minN)), humanize.Comma(int64(maxN))
	pad := max(width-len(left)-len(right), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s\n", gutter, "", left, strings.Repeat(" ", pad), right)
	fmt.Fprintf(&b, "%*s  Number of lists (n)\n", gutter, "")
	fmt.Fprintf(&b, "%c Experimental Time   %c Theoretical Time (scaled)   %c both\n",
		markMeasured, markTheoretical, markBoth)

	_, err := io.WriteString(c.W, b.String())

	return err
}
