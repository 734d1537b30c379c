package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(7), Sum([]uint8{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}

func TestSplitTokens(t *testing.T) {
	assert.Equal(t, []string{"S", "R", "G", "P"}, SplitTokens(" S R,G\tP \n"))
	assert.Empty(t, SplitTokens("   "))
}

func TestUniqueOutputPath(t *testing.T) {
	dir := t.TempDir()
	p1 := UniqueOutputPath(dir, ".png")
	p2 := UniqueOutputPath(dir, "png")
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, dir, filepath.Dir(p1))
	assert.True(t, strings.HasSuffix(p2, ".png"))
	assert.False(t, strings.HasSuffix(p1, "..png"))
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
