package views

import (
	"fmt"
	"strings"
)

func pct[T any](v any, _ T) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.1f%%", f)
}

func money[T any](v any, _ T) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f", f)
}

func minutes[T any](v any, _ T) string {
	n, ok := v.(int)
	if !ok {
		return ""
	}
	if n >= 60 {
		return fmt.Sprintf("%dh %02dm", n/60, n%60)
	}
	return fmt.Sprintf("%dm", n)
}

func joined(items []string) string { return strings.Join(items, ", ") }
