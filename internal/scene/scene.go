package scene

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrUnknownObject = errors.New("unknown object")
	ErrUnknownBone   = errors.New("unknown bone")
	ErrParentCycle   = errors.New("parent cycle")
)

// Kind classifies an object by the sub-parts it can own.
type Kind string

const (
	KindArmature Kind = "armature"
	KindMesh     Kind = "mesh"
	KindOther    Kind = "other"
)

// Scene is an ordered collection of uniquely named objects.
type Scene struct {
	objects []*Object
	index   map[string]*Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{index: make(map[string]*Object)}
}

// Add registers obj under its name.
func (s *Scene) Add(obj *Object) error {
	if _, exists := s.index[obj.Name]; exists {
		return fmt.Errorf("object %q: %w", obj.Name, ErrDuplicateName)
	}
	s.objects = append(s.objects, obj)
	s.index[obj.Name] = obj
	return nil
}

// Objects returns the objects in declaration order.
func (s *Scene) Objects() []*Object {
	return slices.Clone(s.objects)
}

// Object looks an object up by name.
func (s *Scene) Object(name string) (*Object, bool) {
	obj, ok := s.index[name]
	return obj, ok
}

// Object is a scene object. Armatures own bones, meshes own vertex groups.
type Object struct {
	Name string
	Kind Kind

	Parent *Object
	// ParentBone names the bone of an armature Parent this object hangs from.
	ParentBone string

	Constraints []*Constraint
	// VisibleLayers lists the armature layers currently shown. Empty means
	// every layer is shown.
	VisibleLayers []int

	bones      []*Bone
	boneIndex  map[string]*Bone
	groups     []*VertexGroup
	groupIndex map[string]*VertexGroup
}

// NewObject returns an object without sub-parts.
func NewObject(name string, kind Kind) *Object {
	return &Object{
		Name:       name,
		Kind:       kind,
		boneIndex:  make(map[string]*Bone),
		groupIndex: make(map[string]*VertexGroup),
	}
}

// AddBone creates a bone owned by o. A bone name that is already taken
// returns ErrDuplicateName.
func (o *Object) AddBone(name string) (*Bone, error) {
	if _, exists := o.boneIndex[name]; exists {
		return nil, fmt.Errorf("bone %q in %q: %w", name, o.Name, ErrDuplicateName)
	}
	b := &Bone{Name: name, owner: o}
	o.bones = append(o.bones, b)
	o.boneIndex[name] = b
	return b, nil
}

// Bones returns the bones of o in declaration order.
func (o *Object) Bones() []*Bone {
	return slices.Clone(o.bones)
}

// Bone looks a bone of o up by name.
func (o *Object) Bone(name string) (*Bone, bool) {
	b, ok := o.boneIndex[name]
	return b, ok
}

// AddVertexGroup creates a vertex group owned by o.
func (o *Object) AddVertexGroup(name string) (*VertexGroup, error) {
	if _, exists := o.groupIndex[name]; exists {
		return nil, fmt.Errorf("vertex group %q in %q: %w", name, o.Name, ErrDuplicateName)
	}
	g := &VertexGroup{Name: name, owner: o}
	o.groups = append(o.groups, g)
	o.groupIndex[name] = g
	return g, nil
}

// VertexGroups returns the vertex groups of o in declaration order.
func (o *Object) VertexGroups() []*VertexGroup {
	return slices.Clone(o.groups)
}

// VertexGroup looks a vertex group of o up by name.
func (o *Object) VertexGroup(name string) (*VertexGroup, bool) {
	g, ok := o.groupIndex[name]
	return g, ok
}

// LayerVisible reports whether any of layers is among the visible layers of o.
func (o *Object) LayerVisible(layers []int) bool {
	if len(o.VisibleLayers) == 0 {
		return true
	}
	for _, l := range layers {
		if slices.Contains(o.VisibleLayers, l) {
			return true
		}
	}
	return false
}

// Bone is a named sub-part of an armature.
type Bone struct {
	Name        string
	Parent      *Bone
	Deform      bool
	Hidden      bool
	Layers      []int
	Constraints []*Constraint

	owner *Object
}

// Owner returns the armature the bone belongs to.
func (b *Bone) Owner() *Object {
	return b.owner
}

// VertexGroup is a named sub-group of a mesh.
type VertexGroup struct {
	Name string

	owner *Object
}

// Owner returns the mesh the group belongs to.
func (g *VertexGroup) Owner() *Object {
	return g.owner
}
