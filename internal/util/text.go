// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util carries small text helpers shared across the TUI views
// and the transcript store.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth trims s to at most width visible cells, appending an
// ellipsis when anything was cut. Widths follow wcwidth rules so CJK
// characters count as two cells.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncateRunes trims s to at most n runes, appending an ellipsis when
// anything was cut. Used for transcript previews where cells do not
// matter.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

// Wrap word-wraps s to the given cell width. Words longer than the
// width are hard-broken. Existing newlines are preserved.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(wrapLine(line, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var out strings.Builder
	cur := 0
	for i, word := range words {
		w := runewidth.StringWidth(word)
		if w > width {
			// Hard-break oversized words cell by cell.
			if cur > 0 {
				out.WriteByte('\n')
				cur = 0
			}
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if cur+rw > width {
					out.WriteByte('\n')
					cur = 0
				}
				out.WriteRune(r)
				cur += rw
			}
			continue
		}
		switch {
		case i == 0 || cur == 0:
			out.WriteString(word)
			cur += w
		case cur+1+w <= width:
			out.WriteByte(' ')
			out.WriteString(word)
			cur += 1 + w
		default:
			out.WriteByte('\n')
			out.WriteString(word)
			cur = w
		}
	}
	return out.String()
}
