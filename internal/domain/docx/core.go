package docx

import (
	"strings"

	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// CoreProperties are the docProps/core.xml fields the report uses.
type CoreProperties struct {
	Title    string
	Creator  string
	Created  string
	Language string
}

// ReadCoreProperties extracts core properties from a parsed core.xml.
func ReadCoreProperties(root *markup.Element) CoreProperties {
	text := func(name string) string {
		return strings.TrimSpace(root.Find(name).InnerText())
	}
	return CoreProperties{
		Title:    text("title"),
		Creator:  text("creator"),
		Created:  text("created"),
		Language: text("language"),
	}
}

// checkTitle fails when core properties are unreadable or the title is blank.
func checkTitle(core *part) (rules.Result, CoreProperties) {
	r := rules.MetaTitle
	if err := core.err(); err != nil {
		return rules.Degraded(r, core.name, err,
			r.Fail("Document properties could not be read", "")), CoreProperties{}
	}

	props := ReadCoreProperties(core.tree)
	if props.Title == "" {
		return rules.Found(r, r.Fail("Document title is missing", "")), props
	}
	return rules.Found(r, r.Pass("", props.Title)), props
}
