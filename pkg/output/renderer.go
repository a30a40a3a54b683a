// Package output is the report sink: it serializes selection results as
// a plain winner list, as the analysis trace view, or as a rebuilt Dat
// document. The core produces decisions; everything printable lives
// here.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
	"romsieve/pkg/selection"
)

// winnerMarker is the single visible character prefixed to the selected
// line of each group in the analysis view.
const winnerMarker = "*"

// Renderer writes selection results to a writer.
type Renderer struct {
	w      io.Writer
	color  bool
	styles Styles
	logger zerolog.Logger
}

// NewRenderer creates a renderer for w. Styling is applied only when w
// is a color-capable terminal and noColor is false; NO_COLOR is
// honored.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{
		w:      w,
		color:  colorEnabled(w, noColor),
		styles: DefaultStyles(),
		logger: logging.GetLogger("output.renderer"),
	}
}

// WriteWinners prints one winning identifier per line, in
// group-discovery order.
func (r *Renderer) WriteWinners(res *selection.Result) error {
	for _, w := range res.Winners {
		if _, err := fmt.Fprintln(r.w, w.RawName); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write winner list")
		}
	}
	return nil
}

// WriteAnalysis prints the per-group trace: one line per candidate as
// "<score> <marker><name>", a blank line between groups, then the
// invalid entries and the run summary.
func (r *Renderer) WriteAnalysis(res *selection.Result) error {
	for _, gt := range res.Traces {
		for _, cand := range gt.Candidates {
			line := fmt.Sprintf("%s %s%s",
				formatScore(cand.Score), marker(cand.Winner), cand.Name)
			if r.color {
				switch {
				case cand.Winner:
					line = r.styles.Winner.Render(line)
				case cand.Vetoed:
					line = r.styles.Vetoed.Render(line)
				}
			}
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write analysis")
			}
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write analysis")
		}
	}

	if len(res.Invalid) > 0 {
		for _, name := range res.Invalid {
			line := fmt.Sprintf("invalid (no region tag): %s", name)
			if r.color {
				line = r.styles.Invalid.Render(line)
			}
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write analysis")
			}
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write analysis")
		}
	}

	return r.WriteSummary(res)
}

// WriteSummary prints the processed/invalid/vetoed/selected counts. On a
// terminal the counts render as a pterm table; otherwise as plain rows.
func (r *Renderer) WriteSummary(res *selection.Result) error {
	rows := [][]string{
		{"Processed", strconv.Itoa(res.ProcessedCount)},
		{"Invalid", strconv.Itoa(res.InvalidCount)},
		{"Vetoed", strconv.Itoa(res.VetoedCount)},
		{"Selected", strconv.Itoa(res.SelectedCount)},
	}

	if r.color {
		rendered, err := pterm.DefaultTable.WithData(pterm.TableData(rows)).Srender()
		if err == nil {
			if _, err := fmt.Fprintln(r.w, rendered); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write summary")
			}
			return nil
		}
		r.logger.Debug().Err(err).Msg("Table rendering failed, falling back to plain rows")
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(r.w, "%s: %s\n", row[0], row[1]); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write summary")
		}
	}
	return nil
}

// WriteAttributes prints every distinct tag token seen during the run,
// sorted, one per line.
func (r *Renderer) WriteAttributes(res *selection.Result) error {
	for _, attr := range res.Attributes() {
		if _, err := fmt.Fprintln(r.w, attr); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write attribute index")
		}
	}
	return nil
}

// WriteDat serializes a projected Dat document, re-indented.
func (r *Renderer) WriteDat(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.w); err != nil {
		return errors.Wrap(err, errors.ErrDatWrite, "failed to write dat document")
	}
	return nil
}

// formatScore renders scores without trailing zeros: 3, 3.1, -1. Six
// significant digits hide float accumulation noise from the bonuses.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func marker(winner bool) string {
	if winner {
		return winnerMarker
	}
	return " "
}
