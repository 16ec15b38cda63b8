// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"regexp"
	"strings"

	"github.com/jeranaias/taskdeck/internal/util"
)

// ============================================================================
// Reply formatting
// ============================================================================

// LineKind classifies one line of an assistant reply.
type LineKind int

const (
	// LineParagraph is plain prose.
	LineParagraph LineKind = iota
	// LineBullet had a leading "•", "-" or "N." marker, now stripped.
	LineBullet
	// LineBlank separates blocks.
	LineBlank
)

// Line is one classified line of a reply.
type Line struct {
	Kind LineKind
	Text string
}

var numberedRe = regexp.MustCompile(`^\d+\.\s*`)

// FormatReply splits an assistant reply into classified lines. The
// heuristic is purely per-line: a leading "•", "-" or "N." marker
// makes a list item with the marker stripped, a blank line is a
// separator and anything else is prose. There is no nesting and no
// multi-line item continuation.
func FormatReply(content string) []Line {
	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		switch {
		case trimmed == "":
			lines = append(lines, Line{Kind: LineBlank})
		case strings.HasPrefix(trimmed, "•"):
			lines = append(lines, Line{Kind: LineBullet, Text: strings.TrimSpace(trimmed[len("•"):])})
		case strings.HasPrefix(trimmed, "-"):
			lines = append(lines, Line{Kind: LineBullet, Text: strings.TrimSpace(trimmed[1:])})
		case numberedRe.MatchString(trimmed):
			lines = append(lines, Line{Kind: LineBullet, Text: numberedRe.ReplaceAllString(trimmed, "")})
		default:
			lines = append(lines, Line{Kind: LineParagraph, Text: trimmed})
		}
	}
	return lines
}

// renderReply lays out classified lines at the given width. Bullets
// get a "• " gutter with hanging indent; numbered items indent the
// same way under their own marker.
func renderReply(content string, width int) string {
	if width < 8 {
		width = 8
	}
	var b strings.Builder
	for i, line := range FormatReply(content) {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch line.Kind {
		case LineBlank:
			// Nothing; the newline itself is the separator.
		case LineBullet:
			b.WriteString(indentBlock("• ", util.Wrap(line.Text, width-2)))
		default:
			b.WriteString(util.Wrap(line.Text, width))
		}
	}
	return b.String()
}

// indentBlock prefixes the first wrapped line with the gutter and the
// rest with matching spaces.
func indentBlock(gutter, block string) string {
	pad := strings.Repeat(" ", len([]rune(gutter)))
	lines := strings.Split(block, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = gutter + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
