package scan

import (
	"strconv"
	"strings"
)

// FormatOffsets renders offsets as a bracketed, comma separated list, e.g. "[2, 6]".
func FormatOffsets(offsets []int) string {
	parts := make([]string, 0, len(offsets))
	for _, off := range offsets {
		parts = append(parts, strconv.Itoa(off))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
