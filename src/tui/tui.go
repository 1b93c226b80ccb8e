package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/eriklarko/logic-solver/src/environment"
	"github.com/eriklarko/logic-solver/src/truthtable"
	"github.com/samber/lo"
)

type TUI struct {
	input  *bufio.Reader
	output io.Writer
}

// New returns a TUI reading lines from input and writing to output, usually
// os.Stdin and os.Stdout.
func New(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  bufio.NewReader(input),
		output: output,
	}
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// ReadLine prints prompt when running in a terminal and returns the next line
// of input without its line ending. A last line without a newline is returned
// as is; io.EOF is only returned when there is nothing left to read.
func (t *TUI) ReadLine(prompt string) (string, error) {
	if environment.IsInteractive() {
		fmt.Fprint(t.output, prompt)
	}

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Ask repeats question until it gets a yes or a no. An empty answer is a no.
func (t *TUI) Ask(question string, a ...any) (bool, error) {
	for {
		fmt.Fprintf(t.output, question, a...)
		response, err := t.ReadLine("")
		if err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}

// PrintTable writes one line per row, `A=F B=T | true`, followed by the
// classification of the whole table.
func (t *TUI) PrintTable(table *truthtable.Table) {
	for _, row := range table.Rows {
		fmt.Fprintf(t.output, "%s | %s\n", formatAssignment(table.Variables, row), formatOutcome(row))
	}

	fmt.Fprintln(t.output, table.Classify())

	report := table.Report()
	names := lo.Keys(report.Unbound)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(t.output, "variable %s is unbound in %d row(s)\n", name, len(report.Unbound[name]))
	}
}

func formatAssignment(names []string, row truthtable.Row) string {
	cells := make([]string, 0, len(names))
	for _, name := range names {
		cells = append(cells, fmt.Sprintf("%s=%s", name, shortBool(row.Assignment[name])))
	}
	return strings.Join(cells, " ")
}

func formatOutcome(row truthtable.Row) string {
	if row.Err != nil {
		return "error: " + row.Err.Error()
	}
	return fmt.Sprint(row.Value)
}

func shortBool(value bool) string {
	if value {
		return "T"
	}
	return "F"
}
