package pdf

import (
	"strings"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// RoleFigure is the standard structure type of an illustration.
const RoleFigure = "Figure"

// FigureCount is the number of Figure elements and how many lack alt text.
type FigureCount struct {
	Total   int
	Missing int
}

// CountFigures walks the structure tree depth-first. A figure has alt text
// when its Alt entry or its attribute dictionary's Alt entry is non-blank.
func CountFigures(root *domain.StructNode) FigureCount {
	var c FigureCount
	var walk func(n *domain.StructNode)
	walk = func(n *domain.StructNode) {
		if n == nil {
			return
		}
		if n.Role == RoleFigure {
			c.Total++
			if !hasAlt(n) {
				c.Missing++
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return c
}

func hasAlt(n *domain.StructNode) bool {
	return strings.TrimSpace(n.Alt) != "" || strings.TrimSpace(n.Attributes["Alt"]) != ""
}
