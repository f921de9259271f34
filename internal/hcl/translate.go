package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/riggraph/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateFile converts the decoded blocks of one file into the agnostic model.
func translateFile(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}
	for _, ob := range root.Objects {
		m.Objects = append(m.Objects, translateObject(ob))
	}
	for _, sb := range root.Styles {
		style, err := translateStyle(sb)
		if err != nil {
			return nil, err
		}
		m.Styles = append(m.Styles, style)
	}
	if root.Graph != nil {
		m.Graph = config.GraphDef{
			RankDir:  root.Graph.RankDir,
			FontName: root.Graph.FontName,
			Title:    root.Graph.Title,
		}
	}
	return m, nil
}

func translateObject(ob *objectBlock) *config.ObjectDef {
	def := &config.ObjectDef{
		Name:          ob.Name,
		Kind:          ob.Kind,
		Parent:        ob.Parent,
		ParentBone:    ob.ParentBone,
		VisibleLayers: ob.VisibleLayers,
		Constraints:   translateConstraints(ob.Constraints),
	}
	for _, bb := range ob.Bones {
		def.Bones = append(def.Bones, &config.BoneDef{
			Name:        bb.Name,
			Parent:      bb.Parent,
			Deform:      bb.Deform,
			Hidden:      bb.Hidden,
			Layers:      bb.Layers,
			Constraints: translateConstraints(bb.Constraints),
		})
	}
	for _, vg := range ob.VertexGroups {
		def.VertexGroups = append(def.VertexGroups, vg.Name)
	}
	return def
}

func translateConstraints(blocks []*constraintBlock) []*config.ConstraintDef {
	var out []*config.ConstraintDef
	for _, cb := range blocks {
		out = append(out, &config.ConstraintDef{
			Name:      cb.Name,
			Type:      cb.Type,
			Target:    cb.Target,
			Subtarget: cb.Subtarget,
		})
	}
	return out
}

// translateStyle reads the free-form attributes of a style block in source
// order. Values of any primitive type are converted to strings.
func translateStyle(sb *styleBlock) (*config.StyleDef, error) {
	attrs, diags := sb.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("style %q: %w", sb.Category, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	def := &config.StyleDef{Category: sb.Category}
	for _, a := range ordered {
		val, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("style %q attribute %q: %w", sb.Category, a.Name, diags)
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil || str.IsNull() {
			return nil, fmt.Errorf("style %q attribute %q: value must be a string, number or bool", sb.Category, a.Name)
		}
		def.Attrs = append(def.Attrs, config.Attr{Key: a.Name, Value: str.AsString()})
	}
	return def, nil
}
