package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for check reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes check results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the check result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(result), "encoding JSON report")
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportText(result *Result) error {
	errs := result.BySeverity(SeverityError)
	warnings := result.BySeverity(SeverityWarning)
	infos := result.BySeverity(SeverityInfo)

	if len(errs) == 0 && len(warnings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Stream structure OK"))
		for _, f := range infos {
			r.printFinding(f, color.FgHiBlack)
		}
		return nil
	}

	summary := []string{}
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "Check failed: %s\n\n", strings.Join(summary, ", "))

	if len(errs) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, f := range errs {
			r.printFinding(f, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}
	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, f := range warnings {
			r.printFinding(f, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}
	for _, f := range infos {
		r.printFinding(f, color.FgHiBlack)
	}

	return nil
}

func (r *Reporter) printFinding(f Finding, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  • ")
	if f.Frame >= 0 {
		sb.WriteString(printer(fmt.Sprintf("frame %d", f.Frame)))
		sb.WriteString(": ")
	}
	sb.WriteString(f.Message)
	if f.Value != nil {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%v]", f.Value))
	}

	fmt.Fprintln(r.out, sb.String())
}
