package templates

import (
	"fmt"

	"github.com/a-h/templ"
)

func tabURL(id string) templ.SafeURL {
	return templ.SafeURL("/?tab=" + id)
}

func viewURL(id string) string {
	return "/views/" + id
}

func ariaSelected(active bool) string {
	if active {
		return "true"
	}
	return "false"
}

func cellAttrs(c Cell) templ.Attributes {
	return templ.Attributes{
		"style": fmt.Sprintf("background-color: %s; color: %s", c.Background, c.Color),
	}
}

func swatchAttrs(color string) templ.Attributes {
	return templ.Attributes{"style": "background-color: " + color}
}

func tabLabel(id string) string {
	for _, t := range Tabs {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

func footerNote(generator string) string {
	return fmt.Sprintf("Note: Run %s first to generate the analysis files.", generator)
}

// inlineStyle embeds a stylesheet for pages opened without the server.
func inlineStyle(css string) templ.Component {
	return templ.Raw("<style>" + css + "</style>")
}
