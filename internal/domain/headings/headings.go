// Package headings validates the nesting order of document headings.
package headings

import (
	"fmt"
	"strings"
)

// Heading is one heading paragraph in document order.
type Heading struct {
	Level int
	// Label names the heading for messages, usually its style or text.
	Label string
}

// Skip is a transition that jumps more than one level deeper.
type Skip struct {
	Index int
	From  int
	To    int
	Label string
}

func (s Skip) String() string {
	if s.Label == "" {
		return fmt.Sprintf("H%d follows H%d", s.To, s.From)
	}
	return fmt.Sprintf("H%d follows H%d (%s)", s.To, s.From, s.Label)
}

// Validate returns every transition where a heading is more than one level
// deeper than the previous heading. The first heading is never flagged.
// Going back up, repeating a level, or descending by one is valid.
func Validate(hs []Heading) []Skip {
	var skips []Skip
	lastLevel := 0
	for i, h := range hs {
		if i > 0 && h.Level > lastLevel+1 {
			skips = append(skips, Skip{Index: i, From: lastLevel, To: h.Level, Label: h.Label})
		}
		lastLevel = h.Level
	}
	return skips
}

// Levels is a convenience for callers that only track levels.
func Levels(levels ...int) []Heading {
	hs := make([]Heading, len(levels))
	for i, l := range levels {
		hs[i] = Heading{Level: l}
	}
	return hs
}

// Summarize joins at most max skip descriptions, adding an ellipsis marker
// when more exist.
func Summarize(skips []Skip, max int) string {
	if len(skips) == 0 {
		return ""
	}
	n := len(skips)
	if max > 0 && n > max {
		n = max
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = skips[i].String()
	}
	out := strings.Join(parts, "; ")
	if n < len(skips) {
		out += fmt.Sprintf("; ... (%d more)", len(skips)-n)
	}
	return out
}
