package game

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName normalizes item names and directions for comparison.
func FoldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
