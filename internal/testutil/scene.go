package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/riggraph/internal/scene"
)

// Object creates an object and registers it with s.
func Object(t *testing.T, s *scene.Scene, name string, kind scene.Kind) *scene.Object {
	t.Helper()

	obj := scene.NewObject(name, kind)
	require.NoError(t, s.Add(obj))
	return obj
}

// Bone adds a bone to obj with an optional parent.
func Bone(t *testing.T, obj *scene.Object, name string, parent *scene.Bone) *scene.Bone {
	t.Helper()

	b, err := obj.AddBone(name)
	require.NoError(t, err)
	b.Parent = parent
	return b
}

// VertexGroup adds a vertex group to obj.
func VertexGroup(t *testing.T, obj *scene.Object, name string) *scene.VertexGroup {
	t.Helper()

	g, err := obj.AddVertexGroup(name)
	require.NoError(t, err)
	return g
}

// Constraint builds a constraint. A nil target yields a targetless constraint.
func Constraint(name, typ string, target *scene.Object, subtarget string) *scene.Constraint {
	return &scene.Constraint{Name: name, Type: typ, Target: scene.TargetOf(target, subtarget)}
}
