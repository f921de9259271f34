package dot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vk/riggraph/internal/graphmodel"
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape backslash-escapes double quotes and backslashes. Nothing else is
// touched.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render returns the DOT text for m.
func Render(m *graphmodel.Model, style Style) string {
	r := renderer{model: m, style: style}
	r.digraph()
	return r.b.String()
}

type renderer struct {
	model *graphmodel.Model
	style Style
	b     strings.Builder
}

func (r *renderer) line(indent int, format string, args ...any) {
	r.b.WriteString(strings.Repeat("\t", indent))
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
}

func (r *renderer) digraph() {
	s := r.style
	font := Attr{Key: "fontname", Value: s.FontName}

	r.line(0, "digraph {")
	r.line(1, "graph [%s];", defaults(slices.Concat(Attrs{{"rankdir", s.RankDir}}, s.Graph, Attrs{font})))
	r.line(1, "node [%s];", defaults(slices.Concat(s.Node, Attrs{font})))
	r.line(1, "edge [%s];", defaults(slices.Concat(s.Edge, Attrs{font})))
	r.line(1, `label="%s";`, Escape(s.Title))

	for _, id := range r.model.FreeNodes() {
		r.node(1, id)
	}
	for _, c := range r.model.Clusters() {
		r.cluster(c)
	}
	for _, e := range r.model.Edges() {
		r.line(1, `"%d" -> "%d"%s;`, e.From, e.To, r.attrList(e.ID))
	}
	r.line(0, "}")
}

func (r *renderer) node(indent int, id graphmodel.EntityID) {
	r.line(indent, `"%d"%s;`, id, r.attrList(id))
}

func (r *renderer) cluster(c graphmodel.Cluster) {
	label, _ := r.model.Label(c.ID)
	r.line(1, `subgraph "cluster_%d" {`, c.ID)
	for _, a := range r.style.Cluster {
		r.line(2, `%s="%s";`, a.Key, Escape(a.Value))
	}
	r.line(2, `label="%s";`, Escape(label))
	for _, id := range c.Nodes {
		r.node(2, id)
	}
	r.line(1, "}")
}

// attrList composes the bracketed attribute list of an entity, or "" when it
// has none. It starts with a space.
func (r *renderer) attrList(id graphmodel.EntityID) string {
	var parts []string
	if label, ok := r.model.Label(id); ok && label != "" {
		parts = append(parts, `label="`+Escape(label)+`"`)
	}
	for _, tag := range r.model.Categories(id) {
		for _, a := range r.style.Categories[tag] {
			parts = append(parts, `"`+Escape(a.Key)+`"="`+Escape(a.Value)+`"`)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

// defaults formats a default attribute statement body.
func defaults(attrs Attrs) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.Key+`="`+Escape(a.Value)+`"`)
	}
	return strings.Join(parts, " ")
}
