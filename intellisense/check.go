package intellisense

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/logger"
)

// CheckResult holds the result of an up-to-date check
type CheckResult struct {
	UpToDate   bool
	OutputPath string
	// Missing is true when no output file exists yet
	Missing bool
	// FirstDiffLine is the 1-based line (after metadata filtering) where the
	// existing file first differs, or 0
	FirstDiffLine int
	Result        *Result
}

// Check produces the output in memory and compares it with the file at
// opts.OutputPath, ignoring the generation timestamp.
func Check(ctx context.Context, opts Options) (*CheckResult, error) {
	result, err := Produce(ctx, opts)
	if err != nil {
		return nil, err
	}

	check := &CheckResult{OutputPath: opts.OutputPath, Result: result}

	existing, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			check.Missing = true
			return check, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", opts.OutputPath)
	}

	check.FirstDiffLine = firstDifference(
		filterMetadataLines([]byte(result.Output)),
		filterMetadataLines(existing),
	)
	check.UpToDate = check.FirstDiffLine == 0
	if !check.UpToDate {
		logger.LoggerFromContext(logger.WithRunID(ctx, result.RunID), opts.Logger).Warnw("Output is out of date",
			logger.FieldOutput, opts.OutputPath,
			logger.FieldLine, check.FirstDiffLine)
	}
	return check, nil
}

// filterMetadataLines drops the generated-on line, which changes on every run.
// Returns nil if the scanner fails, which makes the comparison fail.
func filterMetadataLines(content []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), GeneratedMarker) {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil
	}
	return lines
}

// firstDifference returns the 1-based index of the first differing line, or 0
func firstDifference(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i + 1
		}
	}
	if len(a) != len(b) {
		return n + 1
	}
	return 0
}
