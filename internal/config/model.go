package config

// Model is the unified, format-agnostic representation of the configuration.
type Model struct {
	Objects []*ObjectDef `validate:"dive"`
	Styles  []*StyleDef  `validate:"dive"`
	Graph   GraphDef
}

// ObjectDef is the format-agnostic representation of an `object` block.
type ObjectDef struct {
	Name          string           `validate:"required"`
	Kind          string           `validate:"required,oneof=armature mesh other"`
	Parent        string           `validate:"omitempty,nefield=Name"`
	ParentBone    string           `validate:"excluded_without=Parent"`
	VisibleLayers []int            `validate:"dive,min=0,max=31"`
	Constraints   []*ConstraintDef `validate:"dive"`
	Bones         []*BoneDef       `validate:"dive"`
	VertexGroups  []string         `validate:"dive,required"`
}

// BoneDef is the format-agnostic representation of a `bone` block.
type BoneDef struct {
	Name        string           `validate:"required"`
	Parent      string           `validate:"omitempty,nefield=Name"`
	Deform      bool
	Hidden      bool
	Layers      []int            `validate:"dive,min=0,max=31"`
	Constraints []*ConstraintDef `validate:"dive"`
}

// ConstraintDef is the format-agnostic representation of a `constraint` block.
type ConstraintDef struct {
	Name      string `validate:"required"`
	Type      string `validate:"required"`
	Target    string
	Subtarget string `validate:"excluded_without=Target"`
}

// StyleDef holds the attributes appended for one category tag, in file order.
type StyleDef struct {
	Category string `validate:"required"`
	Attrs    []Attr `validate:"dive"`
}

// Attr is one style key/value pair.
type Attr struct {
	Key   string `validate:"required"`
	Value string
}

// GraphDef holds the graph-level settings. Empty fields keep their defaults.
type GraphDef struct {
	RankDir  string `validate:"omitempty,oneof=TB BT LR RL"`
	FontName string
	Title    string
}

// Merge appends the objects and styles of other to m. Non-empty graph
// settings in other override those of m.
func (m *Model) Merge(other *Model) {
	m.Objects = append(m.Objects, other.Objects...)
	m.Styles = append(m.Styles, other.Styles...)
	if other.Graph.RankDir != "" {
		m.Graph.RankDir = other.Graph.RankDir
	}
	if other.Graph.FontName != "" {
		m.Graph.FontName = other.Graph.FontName
	}
	if other.Graph.Title != "" {
		m.Graph.Title = other.Graph.Title
	}
}
