package docx

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/WojciechSzmit/wcag/internal/domain/markup"
)

var (
	headingNameRe = regexp.MustCompile(`(?i)(?:heading|nagłówek)\s*([1-6])(?:\D|$)`)
	titleNameRe   = regexp.MustCompile(`(?i)^\s*(?:title|tytuł)\s*$`)
	headingIDRe   = regexp.MustCompile(`(?i)(?:heading|nag[łl]?[óo]?wek)([1-6])(?:\D|$)`)
	titleIDRe     = regexp.MustCompile(`(?i)^(?:title|tytu[łl])$`)
)

// HeadingStyleMap maps style ids to heading levels 1 to 6.
type HeadingStyleMap map[string]int

// Level returns the heading level of a style id, 0 when it is not a heading.
func (m HeadingStyleMap) Level(styleID string) int {
	return m[styleID]
}

// BuildHeadingStyleMap resolves which styles are headings. For each style the
// display name wins, then a based-on reference to a heading style, then the
// style id itself. Title styles count as level 1.
func BuildHeadingStyleMap(styles *markup.Element) HeadingStyleMap {
	type def struct {
		id, name, basedOn string
	}
	var defs []def
	for _, s := range styles.FindAll("style") {
		id := s.Attr("styleId")
		if id == "" {
			continue
		}
		defs = append(defs, def{id: id, name: s.ChildAttr("name", "val"), basedOn: s.ChildAttr("basedOn", "val")})
	}

	byName := make(map[string]int, len(defs))
	for _, d := range defs {
		if lvl := levelFromName(d.name); lvl > 0 {
			byName[d.id] = lvl
		}
	}

	m := make(HeadingStyleMap, len(defs))
	for _, d := range defs {
		switch {
		case byName[d.id] > 0:
			m[d.id] = byName[d.id]
		case d.basedOn != "" && byName[d.basedOn] > 0:
			m[d.id] = byName[d.basedOn]
		case d.basedOn != "" && levelFromID(d.basedOn) > 0:
			m[d.id] = levelFromID(d.basedOn)
		case levelFromID(d.id) > 0:
			m[d.id] = levelFromID(d.id)
		}
	}
	return m
}

func levelFromName(name string) int {
	if titleNameRe.MatchString(name) {
		return 1
	}
	return levelFromMatch(headingNameRe.FindStringSubmatch(name))
}

func levelFromID(id string) int {
	if titleIDRe.MatchString(id) {
		return 1
	}
	return levelFromMatch(headingIDRe.FindStringSubmatch(id))
}

func levelFromMatch(m []string) int {
	if m == nil {
		return 0
	}
	lvl, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return lvl
}

// StyleLabel turns a style id such as "Heading3" into "Heading 3".
func StyleLabel(styleID string) string {
	return strings.Join(camelcase.Split(styleID), " ")
}
