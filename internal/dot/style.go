package dot

import (
	"runtime"

	"github.com/vk/riggraph/internal/config"
)

// Attr is one DOT attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Set replaces the value of key, or appends it when absent.
func (a Attrs) Set(key, value string) Attrs {
	out := make(Attrs, 0, len(a)+1)
	replaced := false
	for _, attr := range a {
		if attr.Key == key {
			attr.Value = value
			replaced = true
		}
		out = append(out, attr)
	}
	if !replaced {
		out = append(out, Attr{Key: key, Value: value})
	}
	return out
}

// Style carries everything the renderer needs besides the model.
type Style struct {
	RankDir  string
	FontName string
	// Title is the small caption printed under the graph.
	Title string

	// Graph, Node, Edge and Cluster are the default attribute statements.
	Graph   Attrs
	Node    Attrs
	Edge    Attrs
	Cluster Attrs

	// Categories maps a category tag to the attributes it contributes.
	Categories map[string]Attrs
}

// DefaultFontName returns the sans-serif font usually installed on goos.
func DefaultFontName(goos string) string {
	switch goos {
	case "linux":
		return "Nimbus Sans L"
	case "darwin":
		return "Gill Sans"
	case "windows":
		return "Calibri"
	default:
		return ""
	}
}

// DefaultStyle returns the built-in look for the current platform.
func DefaultStyle() Style {
	return Style{
		RankDir:  "TB",
		FontName: DefaultFontName(runtime.GOOS),
		Graph:    Attrs{{"style", "rounded"}, {"color", "gray75"}, {"fontsize", "10"}},
		Node:     Attrs{{"shape", "plaintext"}, {"style", "rounded"}},
		Edge:     Attrs{{"fontsize", "10"}},
		Cluster:  Attrs{{"fontsize", "24"}},
		Categories: map[string]Attrs{
			"deforming":     {{"fillcolor", "gray90"}, {"style", "rounded, filled"}},
			"antisymmetric": {{"fillcolor", "lightcoral"}, {"style", "rounded, filled"}},
			"root":          {{"shape", "circle"}},
			"constraint":    {{"color", "gray50"}, {"fontcolor", "gray50"}, {"arrowsize", "0.5"}},
			"invisible":     {{"style", "invisible"}, {"arrowhead", "none"}},
		},
	}
}

// WithModel overlays the styles and graph settings of a configuration
// document. A configured category replaces the built-in one wholesale.
func (s Style) WithModel(m *config.Model) Style {
	out := s
	out.Categories = make(map[string]Attrs, len(s.Categories)+len(m.Styles))
	for tag, attrs := range s.Categories {
		out.Categories[tag] = attrs
	}
	for _, def := range m.Styles {
		attrs := make(Attrs, 0, len(def.Attrs))
		for _, a := range def.Attrs {
			attrs = append(attrs, Attr{Key: a.Key, Value: a.Value})
		}
		out.Categories[def.Category] = attrs
	}
	if m.Graph.RankDir != "" {
		out.RankDir = m.Graph.RankDir
	}
	if m.Graph.FontName != "" {
		out.FontName = m.Graph.FontName
	}
	if m.Graph.Title != "" {
		out.Title = m.Graph.Title
	}
	return out
}
