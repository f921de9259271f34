// Package classifier sorts bones into symmetry classes by comparing a bone
// with its mirror-named sibling: names, parent chains and constraint lists.
//
// Matching is evaluated per queried bone, never globally. When two case
// variants collide, A's opposite may be B while B's opposite is C.
package classifier

import (
	"github.com/vk/riggraph/internal/scene"
	"github.com/vk/riggraph/internal/symmetry"
)

// Class is the symmetry class of a bone. Its value doubles as the category
// tag on graph nodes.
type Class string

const (
	Asymmetric     Class = "asymmetric"
	LeftSymmetric  Class = "left_symmetric"
	RightSymmetric Class = "right_symmetric"
	Antisymmetric  Class = "antisymmetric"
)

// Symmetric reports whether c has a genuine mirror counterpart.
func (c Class) Symmetric() bool {
	return c == LeftSymmetric || c == RightSymmetric
}

// Result is the outcome of Classify. Opposite and Bilateral are set whenever
// the bone name is sided.
type Result struct {
	Class     Class
	Opposite  string
	Bilateral string
}

// Classify determines the symmetry class of bone within owner.
func Classify(bone *scene.Bone, owner *scene.Object) Result {
	sided, ok := symmetry.ParseSidedName(bone.Name)
	if !ok {
		return Result{Class: Asymmetric}
	}

	res := Result{Class: Antisymmetric, Opposite: sided.Opposite, Bilateral: sided.Bilateral}
	opposite, ok := owner.Bone(sided.Opposite)
	if !ok || !matchParents(bone, opposite) || !matchConstraints(bone, opposite, owner) {
		return res
	}

	if sided.Side == symmetry.Left {
		res.Class = LeftSymmetric
	} else {
		res.Class = RightSymmetric
	}
	return res
}

// Opposite returns the mirror bone of bone when the two are symmetric.
func Opposite(bone *scene.Bone, owner *scene.Object) (*scene.Bone, bool) {
	res := Classify(bone, owner)
	if !res.Class.Symmetric() {
		return nil, false
	}
	return owner.Bone(res.Opposite)
}

func matchParents(a, b *scene.Bone) bool {
	switch {
	case a.Parent == nil && b.Parent == nil:
		return true
	case a.Parent == nil || b.Parent == nil:
		return false
	default:
		return symmetry.SymmetricMatch(a.Parent.Name, b.Parent.Name)
	}
}

func matchConstraints(a, b *scene.Bone, owner *scene.Object) bool {
	if len(a.Constraints) != len(b.Constraints) {
		return false
	}
	for i, ca := range a.Constraints {
		cb := b.Constraints[i]
		if ca.Type != cb.Type {
			return false
		}
		target := ca.TargetObject()
		if target != cb.TargetObject() {
			return false
		}
		if target == owner {
			if !symmetry.SymmetricMatch(ca.Subtarget(), cb.Subtarget()) {
				return false
			}
		} else if ca.Subtarget() != cb.Subtarget() {
			return false
		}
	}
	return true
}
