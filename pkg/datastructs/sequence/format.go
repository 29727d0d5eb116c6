package sequence

import (
	"fmt"
	"iter"
	"strings"
)

// Format renders the values of seq as "[e0, e1, ..., en]".
// Each element uses its default fmt representation.
func Format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
