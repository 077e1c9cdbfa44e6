package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentstation/skymatch/pkg/errors"
	"github.com/agentstation/skymatch/pkg/match"
)

// pairRecord is one matched pair in serialized output.
type pairRecord struct {
	ID1              int     `json:"id1" yaml:"id1"`
	ID2              int     `json:"id2" yaml:"id2"`
	SeparationArcsec float64 `json:"separation_arcsec" yaml:"separation_arcsec"`
}

// offsetRecord is the computed systematic offset in serialized output, in
// arcseconds with the RA component scaled by cos(median Dec) for display.
type offsetRecord struct {
	RAArcsec  float64 `json:"ra_arcsec" yaml:"ra_arcsec"`
	DecArcsec float64 `json:"dec_arcsec" yaml:"dec_arcsec"`
}

// matchReport is the full serialized output of a match run.
type matchReport struct {
	Mode            string        `json:"mode" yaml:"mode"`
	RadiusArcsec    float64       `json:"radius_arcsec" yaml:"radius_arcsec"`
	Matched         int           `json:"matched" yaml:"matched"`
	FirstPassCount  int           `json:"first_pass_count,omitempty" yaml:"first_pass_count,omitempty"`
	SecondPassCount int           `json:"second_pass_count,omitempty" yaml:"second_pass_count,omitempty"`
	Offset          *offsetRecord `json:"offset,omitempty" yaml:"offset,omitempty"`
	Pairs           []pairRecord  `json:"pairs" yaml:"pairs"`
}

// renderResult writes a match result in the configured output format.
func (a *App) renderResult(w io.Writer, result *match.Result, mode match.Mode, radius float64, limit int) error {
	report := buildReport(result, mode, radius)

	switch strings.ToLower(a.config.Format) {
	case "table", "":
		return a.renderTable(w, report, limit)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.NewValidationError("format", a.config.Format, "must be table, json, or yaml")
	}
}

// buildReport converts a match result into its serializable form.
func buildReport(result *match.Result, mode match.Mode, radius float64) *matchReport {
	report := &matchReport{
		Mode:         mode.String(),
		RadiusArcsec: radius,
		Matched:      result.Len(),
		Pairs:        make([]pairRecord, result.Len()),
	}

	arcsecs := result.SeparationsArcsec()
	for i, p := range result.Pairs {
		report.Pairs[i] = pairRecord{ID1: p.Source, ID2: p.Target, SeparationArcsec: arcsecs[i]}
	}

	if mode == match.OneToOneOffset {
		report.FirstPassCount = result.Diagnostics.FirstPassCount
		report.SecondPassCount = result.Diagnostics.SecondPassCount
	}
	if off := result.Diagnostics.Offset; off != nil {
		ra, dec := off.OnSkyArcsec(result.Diagnostics.MedianDec)
		report.Offset = &offsetRecord{RAArcsec: ra, DecArcsec: dec}
	}

	return report
}

// renderTable writes the report as a human-readable table with a summary.
func (a *App) renderTable(w io.Writer, report *matchReport, limit int) error {
	printer := message.NewPrinter(language.English)

	pairs := report.Pairs
	truncated := 0
	if limit > 0 && len(pairs) > limit {
		truncated = len(pairs) - limit
		pairs = pairs[:limit]
	}

	if len(pairs) > 0 {
		table := tablewriter.NewTable(w)
		table.Header("ID1", "ID2", "SEP (ARCSEC)")
		for _, p := range pairs {
			if err := table.Append(
				strconv.Itoa(p.ID1),
				strconv.Itoa(p.ID2),
				strconv.FormatFloat(p.SeparationArcsec, 'f', 4, 64),
			); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		if truncated > 0 {
			printer.Fprintf(w, "... and %d more pairs\n", truncated)
		}
	}

	if a.config.Quiet {
		return nil
	}

	switch report.Mode {
	case "many-to-one":
		printer.Fprintf(w, "Multi-one match: %d sources\n", report.Matched)
	case "one-to-one":
		printer.Fprintf(w, "Forced one-one match: %d sources\n", report.Matched)
	default:
		printer.Fprintf(w, "First match: %d sources\n", report.FirstPassCount)
		if report.Offset != nil {
			fmt.Fprintf(w, "RA offset: %.4f arcsec, Dec offset: %.4f arcsec\n",
				report.Offset.RAArcsec, report.Offset.DecArcsec)
		}
		printer.Fprintf(w, "Second match: %d sources\n", report.SecondPassCount)
	}

	return nil
}
