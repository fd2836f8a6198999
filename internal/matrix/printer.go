package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Fprint writes m one row per line as "[ " followed by each value right-aligned
// in a five character field and a trailing space, then "]".
func Fprint(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i := range m.n {
		buf = append(buf[:0], "[ "...)
		for _, v := range m.Row(i) {
			buf = appendPadded(buf, v, 5)
			buf = append(buf, ' ')
		}
		buf = append(buf, "]\n"...)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendPadded(buf []byte, v int32, width int) []byte {
	var tmp [12]byte
	digits := strconv.AppendInt(tmp[:0], int64(v), 10)
	for range width - len(digits) {
		buf = append(buf, ' ')
	}
	return append(buf, digits...)
}

// String renders m in the Fprint format.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, m)
	return sb.String()
}
