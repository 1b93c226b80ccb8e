package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/samber/lo"
)

// WriteAssignment writes one `variable,value` record per variable, sorted by
// variable name.
func WriteAssignment(filePath string, assignment boolexpr.Assignment) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = filePath
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	names := lo.Keys(assignment)
	slices.Sort(names)
	for _, name := range names {
		record := []string{name, strconv.FormatBool(assignment[name])}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", absPath, err)
	}
	return nil
}

// ReadAssignment reads `variable,value` records, as written by
// WriteAssignment. Values are anything strconv.ParseBool accepts.
func ReadAssignment(filePath string) (boolexpr.Assignment, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", absPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from file %s: %w", absPath, err)
	}

	assignment := make(boolexpr.Assignment, len(records))
	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v: expected 2 fields, got %d", record, len(record))
		}

		name := strings.TrimSpace(record[0])
		value, err := strconv.ParseBool(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse boolean %s for variable %s: %w", record[1], name, err)
		}

		assignment[name] = value
	}

	return assignment, nil
}

// ParseAssignment parses `NAME=value` pairs, as given on the command line.
func ParseAssignment(pairs []string) (boolexpr.Assignment, error) {
	assignment := make(boolexpr.Assignment, len(pairs))
	for _, pair := range pairs {
		name, rawValue, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid assignment '%s': expected NAME=value", pair)
		}

		value, err := strconv.ParseBool(strings.TrimSpace(rawValue))
		if err != nil {
			return nil, fmt.Errorf("failed to parse boolean %s for variable %s: %w", rawValue, name, err)
		}
		assignment[strings.TrimSpace(name)] = value
	}

	return assignment, nil
}

// SplitVariables splits a variable list such as "A, B,C" into names. Blank
// input gives no names.
func SplitVariables(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), ",")
	names := lo.Map(parts, func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Compact(names)
}
