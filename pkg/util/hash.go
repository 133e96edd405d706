package util

import (
	"github.com/twmb/murmur3"
	"strings"
)

// HashFunc is stored next to offer codes so lookups hit a narrow integer index
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// NormalizeCode ...
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
