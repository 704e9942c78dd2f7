package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/levelpack/internal/level"
)

// WriteTokens emits the packed bytes in textual token form, one `0xHH,`
// line per byte with uppercase hex digits. Blank lines are never emitted.
func WriteTokens(w io.Writer, packed []level.Packed) error {
	for _, p := range packed {
		if _, err := fmt.Fprintf(w, "0x%02X,\n", p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Summary holds the per-run counters printed after a successful pack.
type Summary struct {
	Input       string // input path as given by the user
	ValidLines  int    // non-padding input lines used
	Padded      int    // synthetic zero entries appended
	OutputBytes int    // packed bytes produced
}

// Ratio returns the valid-lines-per-byte compression ratio. The second
// return is false when no bytes were produced, in which case there is no
// ratio to print.
func (s Summary) Ratio() (float64, bool) {
	if s.OutputBytes == 0 {
		return 0, false
	}
	return float64(s.ValidLines) / float64(s.OutputBytes), true
}

// PrintSummary writes the human-readable run summary. The padded-lines
// count appears only when padding was added, and the ratio line only when
// at least one valid input line existed.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "=== Pack Result (MSB-first) ===")
	fmt.Fprintf(w, "Input file            : %s\n", s.Input)
	fmt.Fprintf(w, "Valid level lines used : %d\n", s.ValidLines)
	if s.Padded > 0 {
		fmt.Fprintf(w, "Padded lines added     : %d (as %s)\n", s.Padded, level.PaddingToken)
	}
	fmt.Fprintf(w, "Output lines           : %d\n", s.OutputBytes)
	if ratio, ok := s.Ratio(); ok && s.ValidLines > 0 {
		fmt.Fprintf(w, "Line ratio             : %d -> %d (x%.2f smaller)\n", s.ValidLines, s.OutputBytes, ratio)
	}
}

// PrintMapping writes the debug mapping: one line per packed byte showing
// its 0-based index, value, and contributing source texts. A negative limit
// means all bytes; otherwise only the first limit bytes are printed.
func PrintMapping(w io.Writer, packed []level.Packed, limit int) {
	items := packed
	if limit < 0 {
		fmt.Fprintln(w, "\n=== Debug Mapping (all bytes) ===")
	} else {
		fmt.Fprintf(w, "\n=== Debug Mapping (first %d bytes) ===\n", limit)
		if limit < len(items) {
			items = items[:limit]
		}
	}
	for i, p := range items {
		fmt.Fprintf(w, "%04d: 0x%02X  <=  %s\n", i, p.Value, strings.Join(p.Sources, ", "))
	}
}
