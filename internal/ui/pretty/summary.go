package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gowikitext/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatFileLine formats one converted file as "input -> output".
func (s *Styles) FormatFileLine(outcome runner.FileOutcome) string {
	if outcome.Error != nil {
		return s.FilePath.Render(outcome.Path) + ": " + s.Error.Render(outcome.Error.Error()) + "\n"
	}

	line := s.FilePath.Render(outcome.Path) + s.Arrow.Render(" -> ") + outcome.OutputPath
	if outcome.Warnings > 0 {
		word := "warnings"
		if outcome.Warnings == 1 {
			word = "warning"
		}
		line += " " + s.Warning.Render(fmt.Sprintf("(%d %s)", outcome.Warnings, word))
	}
	return line + "\n"
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files converted, 2 warnings, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesConverted == 1 {
		fileWord = wordFile
	}

	parts := []string{fmt.Sprintf("%d %s converted", stats.FilesConverted, fileWord)}

	if stats.WarningsTotal > 0 {
		word := "warnings"
		if stats.WarningsTotal == 1 {
			word = "warning"
		}
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s", stats.WarningsTotal, word)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	if stats.FilesErrored == 0 && stats.WarningsTotal == 0 {
		return s.Success.Render(parts[0]) + "\n"
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files converted:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesConverted)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	if stats.FilesWithWarnings > 0 {
		builder.WriteString("  Files w/ warnings: " +
			s.Warning.Render(strconv.Itoa(stats.FilesWithWarnings)) + "\n")
		builder.WriteString("  Total warnings:    " +
			s.Warning.Render(strconv.Itoa(stats.WarningsTotal)) + "\n")
	}

	builder.WriteString("  Markup written:    " +
		s.SummaryValue.Render(formatBytes(stats.BytesWritten)) + "\n")

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Conversion failed for some files"))
	case stats.WarningsTotal > 0:
		builder.WriteString(s.Warning.Render("Conversion completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Conversion complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// formatBytes renders a byte count with a human-readable unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
