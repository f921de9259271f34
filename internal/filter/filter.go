// Package filter provides the bone exclusion predicates handed to the graph
// builder.
package filter

import (
	"github.com/vk/riggraph/internal/classifier"
	"github.com/vk/riggraph/internal/graphbuilder"
	"github.com/vk/riggraph/internal/scene"
)

// None excludes nothing.
func None() graphbuilder.ExcludeFunc {
	return func(*scene.Bone, *scene.Object) bool { return false }
}

// Invisible excludes bones that are not shown, unless their symmetric mirror
// is shown.
func Invisible() graphbuilder.ExcludeFunc {
	return classifier.InvisibleWithMirror
}

// Selected keeps only the named bones of owner. Right-side names of symmetric
// pairs select their left counterpart, which is the side that gets drawn.
// Bones of every other object are excluded.
func Selected(owner *scene.Object, names []string) graphbuilder.ExcludeFunc {
	keep := classifier.NormalizeToLeft(owner, names)
	return func(bone *scene.Bone, obj *scene.Object) bool {
		return obj != owner || !keep[bone.Name]
	}
}

// Any excludes a bone when at least one of preds does. Nil entries are
// skipped.
func Any(preds ...graphbuilder.ExcludeFunc) graphbuilder.ExcludeFunc {
	return func(bone *scene.Bone, owner *scene.Object) bool {
		for _, p := range preds {
			if p != nil && p(bone, owner) {
				return true
			}
		}
		return false
	}
}
