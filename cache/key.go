package cache

import (
	"strconv"
	"strings"
)

// indexKey renders an index sequence into a collision-free map key. Indices
// are non-negative, so joining their decimal forms with a separator that
// cannot appear in a decimal integer is an unambiguous encoding.
func indexKey(idx []int) string {
	var b strings.Builder
	for _, v := range idx {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('/')
	}
	return b.String()
}
