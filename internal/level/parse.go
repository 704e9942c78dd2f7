package level

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/vk/levelpack/internal/ctxlog"
)

// lineRE matches one level token: a 0x/0X marker, exactly two binary digits,
// and a trailing comma. Whitespace is allowed around the token and before
// the comma. The two digits are read as base 2, not hexadecimal.
var lineRE = regexp.MustCompile(`^\s*0[xX]([01]{2})\s*,\s*$`)

// Line is one decoded non-blank input line.
type Line struct {
	Raw    string // trimmed original text, or PaddingToken for padding
	Number int    // 1-based physical line number; 0 for padding
	Value  uint8  // decoded 2-bit value, 0..3
}

// FormatError reports an input line that does not match the token pattern.
type FormatError struct {
	Line int
	Raw  string
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: invalid format: %q", e.Line, e.Raw)
}

// ParseLine decodes a single raw line into a Line. The number is the
// 1-based physical position of the line in its file.
func ParseLine(raw string, number int) (Line, error) {
	m := lineRE.FindStringSubmatch(raw)
	if m == nil {
		return Line{}, &FormatError{Line: number, Raw: strings.TrimSpace(raw)}
	}
	var v uint8
	for _, c := range m[1] {
		v = v<<1 | uint8(c-'0')
	}
	return Line{Raw: strings.TrimSpace(raw), Number: number, Value: v}, nil
}

// Parse reads the whole stream and returns the decoded lines in file order.
// Blank and whitespace-only lines advance the line counter but produce no
// entry. The first malformed line aborts the parse with a FormatError; no
// partial result is returned.
func Parse(ctx context.Context, r io.Reader) ([]Line, error) {
	logger := ctxlog.FromContext(ctx)

	var lines []Line
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := ParseLine(raw, number)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	logger.Debug("Input parsed.", "lines_read", number, "values_decoded", len(lines))
	return lines, nil
}
