package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p := GenerateTempPassword(8)
		assert.Len(t, p, 8)
		seen[p] = true
	}
	// 100 次生成不应全部相同
	assert.Greater(t, len(seen), 1)
}
