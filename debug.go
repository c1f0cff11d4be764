package recq

import (
	"fmt"
	"strconv"
	"strings"
)

var dumpSep = strings.Repeat("-", 60)

// Dump renders c one element per line, prefixed with its index, for
// debugging and the recq command.
func Dump(c Collection) string {
	var buf strings.Builder
	w := len(strconv.Itoa(len(c) - 1))
	fmt.Fprintf(&buf, "%d elements\n", len(c))
	fmt.Fprintln(&buf, dumpSep)
	for i, v := range c {
		buf.WriteString(rpad(strconv.Itoa(i), w, ' '))
		buf.WriteString("  ")
		buf.Write(must(JSON.Encode(v)))
		buf.WriteByte('\n')
	}
	return buf.String()
}

func rpad(s string, n int, pad rune) string {
	rem := n - len(s)
	if rem <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), rem)
}
