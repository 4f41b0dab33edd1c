package scan

import (
	"fmt"
	"strings"
)

// Severity grades a finding.
type Severity int

const (
	// SeverityError marks structural damage that affects decoding.
	SeverityError Severity = iota
	// SeverityWarning marks oddities a decoder survives.
	SeverityWarning
	// SeverityInfo marks neutral observations.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Finding is one observation about the stream structure.
type Finding struct {
	// Severity grades the finding.
	Severity Severity
	// Frame is the frame index the finding refers to, -1 for
	// stream-level findings.
	Frame int
	// Message describes the finding.
	Message string
	// Value carries the offending value, when one exists.
	Value any
}

// Error implements the error interface.
func (f Finding) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Severity.String())
	sb.WriteString(": ")
	if f.Frame >= 0 {
		fmt.Fprintf(&sb, "frame %d: ", f.Frame)
	}
	sb.WriteString(f.Message)
	if f.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", f.Value)
	}
	return sb.String()
}

// Result aggregates the findings of one stream check.
type Result struct {
	Findings []Finding
}

// HasErrors reports whether any finding is an error.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// BySeverity returns the findings of one severity, in order.
func (r *Result) BySeverity(s Severity) []Finding {
	if r == nil {
		return nil
	}
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

func (r *Result) add(s Severity, frame int, message string, value any) {
	r.Findings = append(r.Findings, Finding{
		Severity: s,
		Frame:    frame,
		Message:  message,
		Value:    value,
	})
}

// Check grades a walked stream.
func Check(st *Stream) *Result {
	res := &Result{}

	if st.Summary.Frames == 0 {
		res.add(SeverityError, -1, "no decodable frames found", nil)
		return res
	}

	for i, rec := range st.Records {
		if rec.Truncated {
			res.add(SeverityError, i, "main data truncated", rec.MainDataSize)
		}
		if rec.SampleRate != st.Records[0].SampleRate {
			res.add(SeverityError, i, "sample rate changes mid-stream", rec.SampleRate)
		}
	}

	if st.Summary.TrailingBytes > 0 {
		res.add(SeverityWarning, -1, "unparseable bytes after the last frame",
			st.Summary.TrailingBytes)
	}
	if st.Summary.BitrateSwitches > 0 {
		res.add(SeverityInfo, -1, "bitrate switches between frames",
			st.Summary.BitrateSwitches)
	}

	protected := 0
	for _, rec := range st.Records {
		if rec.Protected {
			protected++
		}
	}
	if protected > 0 {
		res.add(SeverityInfo, -1, "CRC-protected frames present, CRC not verified",
			protected)
	}

	return res
}
