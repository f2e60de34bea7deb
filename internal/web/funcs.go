package web

import (
	"html/template"

	"github.com/imdewan/mrdsa-dev/internal/ui"
)

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown":  s.md.Render,
		"inline":    s.md.Inline,
		"stateName": ui.StateName,
		"icon":      icon,
		"delay": func(i int) template.CSS {
			return template.CSS(ui.DelayCSS(i, ui.DefaultStagger))
		},
		"techDelay": func(i int) template.CSS {
			return template.CSS(ui.DelayCSS(i, ui.DefaultStagger/2))
		},
	}
}
