package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHashFunc(t *testing.T) {
	assert.Equal(t, HashFunc("SUMMER20"), HashFunc("SUMMER20"))
	assert.NotEqual(t, HashFunc("SUMMER20"), HashFunc("SUMMER21"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SUMMER20", NormalizeCode("  summer20 "))
	assert.Equal(t, "", NormalizeCode(" "))
}
