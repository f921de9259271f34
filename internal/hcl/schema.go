package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Objects []*objectBlock `hcl:"object,block"`
	Styles  []*styleBlock  `hcl:"style,block"`
	Graph   *graphBlock    `hcl:"graph,block"`
}

type objectBlock struct {
	Name          string              `hcl:"name,label"`
	Kind          string              `hcl:"kind"`
	Parent        string              `hcl:"parent,optional"`
	ParentBone    string              `hcl:"parent_bone,optional"`
	VisibleLayers []int               `hcl:"visible_layers,optional"`
	Constraints   []*constraintBlock  `hcl:"constraint,block"`
	Bones         []*boneBlock        `hcl:"bone,block"`
	VertexGroups  []*vertexGroupBlock `hcl:"vertex_group,block"`
}

type boneBlock struct {
	Name        string             `hcl:"name,label"`
	Parent      string             `hcl:"parent,optional"`
	Deform      bool               `hcl:"deform,optional"`
	Hidden      bool               `hcl:"hidden,optional"`
	Layers      []int              `hcl:"layers,optional"`
	Constraints []*constraintBlock `hcl:"constraint,block"`
}

type constraintBlock struct {
	Name      string `hcl:"name,label"`
	Type      string `hcl:"type"`
	Target    string `hcl:"target,optional"`
	Subtarget string `hcl:"subtarget,optional"`
}

type vertexGroupBlock struct {
	Name string `hcl:"name,label"`
}

// styleBlock keeps its body raw since any attribute name is a style key.
type styleBlock struct {
	Category string   `hcl:"category,label"`
	Body     hcl.Body `hcl:",remain"`
}

type graphBlock struct {
	RankDir  string `hcl:"rankdir,optional"`
	FontName string `hcl:"fontname,optional"`
	Title    string `hcl:"title,optional"`
}
