package level

// PaddingToken is the source text recorded for synthetic zero entries.
const PaddingToken = "0x00,"

// valuesPerByte is fixed by the format: four 2-bit values fill one byte.
const valuesPerByte = 4

// Packed is one output byte, together with the source texts of the up to
// four input lines that produced it. Sources is nil unless the packer was
// asked to record them.
type Packed struct {
	Value   byte
	Sources []string
}

// PaddingFor returns how many zero entries must be appended so that n
// values divide evenly into bytes. The result is always in 0..3.
func PaddingFor(n int) int {
	return (valuesPerByte - n%valuesPerByte) % valuesPerByte
}

// Pad appends synthetic zero-valued lines until the sequence length is a
// multiple of four, returning the padded sequence and the number of entries
// added. An empty input needs no padding and stays empty.
func Pad(lines []Line) ([]Line, int) {
	padding := PaddingFor(len(lines))
	for i := 0; i < padding; i++ {
		lines = append(lines, Line{Raw: PaddingToken, Value: 0})
	}
	return lines, padding
}

// PackByte merges four 2-bit values into one byte, first value in the two
// most-significant bits.
func PackByte(v0, v1, v2, v3 uint8) byte {
	return v0<<6 | v1<<4 | v2<<2 | v3
}

// UnpackByte splits a byte back into its four 2-bit values, most-significant
// pair first. It is the exact inverse of PackByte.
func UnpackByte(b byte) (uint8, uint8, uint8, uint8) {
	return b >> 6 & 0x3, b >> 4 & 0x3, b >> 2 & 0x3, b & 0x3
}

// Pack converts a padded sequence into output bytes in input order. The
// sequence length must be a multiple of four, which Pad guarantees. When
// withSources is true each Packed retains the texts of its four
// contributing lines, in group order, for the debug mapping.
func Pack(lines []Line, withSources bool) []Packed {
	packed := make([]Packed, 0, len(lines)/valuesPerByte)
	for i := 0; i+valuesPerByte <= len(lines); i += valuesPerByte {
		group := lines[i : i+valuesPerByte]
		p := Packed{Value: PackByte(group[0].Value, group[1].Value, group[2].Value, group[3].Value)}
		if withSources {
			p.Sources = []string{group[0].Raw, group[1].Raw, group[2].Raw, group[3].Raw}
		}
		packed = append(packed, p)
	}
	return packed
}
