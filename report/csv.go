// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the first row written by CSV.
var CSVHeader = []string{"n", "cost", "measured_ns", "theoretical_ns", "raw"}

// CSV writes one row per swept point for external plotting.
type CSV struct {
	W io.Writer
}

// NewCSV returns a CSV sink writing to w.
func NewCSV(w io.Writer) *CSV { return &CSV{W: w} }

// Render implements Sink.
func (c *CSV) Render(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(c.W)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for i := range s.N {
		row := []string{
			strconv.Itoa(s.N[i]),
			strconv.FormatInt(s.Costs[i], 10),
			strconv.FormatFloat(s.Measured[i], 'f', 0, 64),
			strconv.FormatFloat(s.Theoretical[i], 'f', 3, 64),
			strconv.FormatFloat(s.Raw[i], 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
