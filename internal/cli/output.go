// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/chapter3/internal/format"
	"github.com/agbru/chapter3/internal/sequence"
	"github.com/agbru/chapter3/internal/temperature"
	"github.com/agbru/chapter3/internal/ui"
)

// Console texts of the two programs.
const (
	SequencePrompt         = "Enter n for the fibonacci sequence"
	UnitPrompt             = "Convert to what unit? (Enter C or F)"
	TemperaturePrompt      = "Enter the temperature you want to convert"
	InvalidSelectorMessage = "That is not a valid input"
)

// FormatSequenceResult renders an evaluation as the result line, without
// the trailing newline.
func FormatSequenceResult(res sequence.Result) string {
	return formatSequenceResult(res, ui.PlainTheme())
}

func formatSequenceResult(res sequence.Result, theme ui.Theme) string {
	return fmt.Sprintf("The fibonacci number at position %d is %s",
		res.Reported, theme.Value(res.Value.String()))
}

// DisplaySequenceResult writes the result line of the sequence evaluator.
func DisplaySequenceResult(out io.Writer, res sequence.Result, theme ui.Theme) {
	fmt.Fprintln(out, formatSequenceResult(res, theme))
}

// FormatConversion renders a conversion as "{in} C is {out} in F" or
// "{in} F is {out} in C".
func FormatConversion(c temperature.Conversion) string {
	return formatConversion(c, ui.PlainTheme())
}

func formatConversion(c temperature.Conversion, theme ui.Theme) string {
	return fmt.Sprintf("%s %s is %s in %s",
		format.FormatFloat(c.Input), c.From, theme.Value(format.FormatFloat(c.Result)), c.To)
}

// DisplayConversion writes the result line of the converter.
func DisplayConversion(out io.Writer, c temperature.Conversion, theme ui.Theme) {
	fmt.Fprintln(out, formatConversion(c, theme))
}

// DisplayInvalidSelector writes the converter's message for an unknown unit.
func DisplayInvalidSelector(out io.Writer, theme ui.Theme) {
	fmt.Fprintln(out, theme.Warning(InvalidSelectorMessage))
}

// DisplayRetryNotice tells the user why the question is asked again.
func DisplayRetryNotice(out io.Writer, err error, theme ui.Theme) {
	fmt.Fprintf(out, "%s %v, please try again\n", theme.Warning("Invalid input:"), err)
}
