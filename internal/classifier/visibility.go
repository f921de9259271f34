package classifier

import "github.com/vk/riggraph/internal/scene"

// Invisible reports whether bone is hidden or sits only on layers owner does
// not show.
func Invisible(bone *scene.Bone, owner *scene.Object) bool {
	return bone.Hidden || !owner.LayerVisible(bone.Layers)
}

// InvisibleWithMirror reports whether bone is invisible and, when it is
// symmetric, whether its mirror is invisible too. A visible mirror keeps the
// bilateral node on the graph.
func InvisibleWithMirror(bone *scene.Bone, owner *scene.Object) bool {
	if !Invisible(bone, owner) {
		return false
	}
	if opposite, ok := Opposite(bone, owner); ok {
		return Invisible(opposite, owner)
	}
	return true
}

// NormalizeToLeft maps every right-symmetric bone name in names to its left
// counterpart. Names that do not resolve to a bone of owner are kept as is.
func NormalizeToLeft(owner *scene.Object, names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, name := range names {
		bone, ok := owner.Bone(name)
		if !ok {
			out[name] = true
			continue
		}
		if res := Classify(bone, owner); res.Class == RightSymmetric {
			name = res.Opposite
		}
		out[name] = true
	}
	return out
}
