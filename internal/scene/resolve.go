package scene

import (
	"fmt"

	"github.com/vk/riggraph/internal/config"
)

// FromModel resolves the name references of a configuration document into an
// identity-linked scene. Unknown parents and constraint targets are errors.
// Subtarget names are kept verbatim and resolved by whoever reads them.
func FromModel(m *config.Model) (*Scene, error) {
	s := New()

	for _, def := range m.Objects {
		obj := NewObject(def.Name, Kind(def.Kind))
		obj.VisibleLayers = def.VisibleLayers
		if err := s.Add(obj); err != nil {
			return nil, err
		}
		for _, bd := range def.Bones {
			b, err := obj.AddBone(bd.Name)
			if err != nil {
				return nil, err
			}
			b.Deform = bd.Deform
			b.Hidden = bd.Hidden
			b.Layers = bd.Layers
			if len(b.Layers) == 0 {
				b.Layers = []int{0}
			}
		}
		for _, name := range def.VertexGroups {
			if _, err := obj.AddVertexGroup(name); err != nil {
				return nil, err
			}
		}
	}

	for _, def := range m.Objects {
		obj, _ := s.Object(def.Name)
		if err := s.resolveObject(obj, def); err != nil {
			return nil, err
		}
	}

	if err := s.checkCycles(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) resolveObject(obj *Object, def *config.ObjectDef) error {
	if def.Parent != "" {
		parent, ok := s.Object(def.Parent)
		if !ok {
			return fmt.Errorf("object %q parent %q: %w", obj.Name, def.Parent, ErrUnknownObject)
		}
		obj.Parent = parent
		if def.ParentBone != "" {
			if _, ok := parent.Bone(def.ParentBone); !ok {
				return fmt.Errorf("object %q parent bone %q: %w", obj.Name, def.ParentBone, ErrUnknownBone)
			}
			obj.ParentBone = def.ParentBone
		}
	}

	var err error
	if obj.Constraints, err = s.resolveConstraints(def.Constraints); err != nil {
		return fmt.Errorf("object %q: %w", obj.Name, err)
	}

	for _, bd := range def.Bones {
		b, _ := obj.Bone(bd.Name)
		if bd.Parent != "" {
			parent, ok := obj.Bone(bd.Parent)
			if !ok {
				return fmt.Errorf("bone %q parent %q: %w", b.Name, bd.Parent, ErrUnknownBone)
			}
			b.Parent = parent
		}
		if b.Constraints, err = s.resolveConstraints(bd.Constraints); err != nil {
			return fmt.Errorf("bone %q in %q: %w", b.Name, obj.Name, err)
		}
	}
	return nil
}

func (s *Scene) resolveConstraints(defs []*config.ConstraintDef) ([]*Constraint, error) {
	out := make([]*Constraint, 0, len(defs))
	for _, cd := range defs {
		var target *Object
		if cd.Target != "" {
			obj, ok := s.Object(cd.Target)
			if !ok {
				return nil, fmt.Errorf("constraint %q target %q: %w", cd.Name, cd.Target, ErrUnknownObject)
			}
			target = obj
		}
		out = append(out, &Constraint{
			Name:   cd.Name,
			Type:   cd.Type,
			Target: TargetOf(target, cd.Subtarget),
		})
	}
	return out, nil
}

func (s *Scene) checkCycles() error {
	for _, obj := range s.objects {
		seen := map[*Object]bool{}
		for o := obj; o != nil; o = o.Parent {
			if seen[o] {
				return fmt.Errorf("object %q: %w", obj.Name, ErrParentCycle)
			}
			seen[o] = true
		}
		for _, b := range obj.bones {
			seenBones := map[*Bone]bool{}
			for p := b; p != nil; p = p.Parent {
				if seenBones[p] {
					return fmt.Errorf("bone %q in %q: %w", b.Name, obj.Name, ErrParentCycle)
				}
				seenBones[p] = true
			}
		}
	}
	return nil
}
