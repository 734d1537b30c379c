package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// EnsureOutputDir creates dir (and parents) if it is missing.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	return nil
}

// UniqueOutputPath returns a fresh uuid-named path with the given extension
// inside dir.
func UniqueOutputPath(dir, ext string) string {
	return filepath.Join(dir, uuid.New().String()+"."+strings.TrimPrefix(ext, "."))
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// SplitTokens breaks user input on whitespace and commas, dropping empties.
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
