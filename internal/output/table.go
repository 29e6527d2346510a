package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sgl-umons/rabbit/internal/format"
	"github.com/sgl-umons/rabbit/internal/model"
)

// TableFormatter formats results as a terminal table.
type TableFormatter struct{}

var (
	botColor     = color.New(color.FgRed, color.Bold)
	humanColor   = color.New(color.FgGreen)
	unknownColor = color.New(color.FgYellow)
	invalidColor = color.New(color.FgHiBlack)
)

// userTypeCell renders the classification, colored when stdout is a
// terminal (fatih/color handles the non-TTY case itself).
func userTypeCell(t model.UserType) string {
	switch t {
	case model.UserTypeBot:
		return botColor.Sprint(t)
	case model.UserTypeHuman:
		return humanColor.Sprint(t)
	case model.UserTypeUnknown:
		return unknownColor.Sprint(t)
	default:
		return invalidColor.Sprint(t)
	}
}

// confidenceBar renders a 10-cell bar for the confidence score, or
// blanks when no prediction was made.
func confidenceBar(c model.Confidence) string {
	if !c.Valid {
		return ""
	}
	filled := int(c.Value * 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// Format outputs results as a table.
func (f *TableFormatter) Format(results []model.ContributorResult, w io.Writer) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No contributors classified.")
		return nil
	}

	const (
		colContributor = 24
		colType        = 8
		colConfidence  = 10
	)

	// Widen the contributor column on wide terminals
	contributorWidth := colContributor
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 80 {
		contributorWidth = colContributor + (width-80)/4
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n",
		contributorWidth, "Contributor",
		colType, "Type",
		"Confidence")
	fmt.Fprintln(w, strings.Repeat("-", contributorWidth+colType+colConfidence+16))

	for _, r := range results {
		name, nameWidth := format.TruncateToWidth(r.Contributor, contributorWidth)
		cell := userTypeCell(r.UserType)

		fmt.Fprintf(w, "%s  %s  %-*s  %s\n",
			format.PadRight(name, nameWidth, contributorWidth),
			format.PadRight(cell, format.DisplayWidth(cell), colType),
			colConfidence, r.Confidence.String(),
			confidenceBar(r.Confidence))
	}

	return nil
}
