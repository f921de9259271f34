package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/riggraph/internal/graphbuilder"
	"github.com/vk/riggraph/internal/scene"
	"github.com/vk/riggraph/internal/testutil"
)

type rigFixture struct {
	rig, other        *scene.Object
	spine, armL, armR *scene.Bone
	mch               *scene.Bone
}

func newRigFixture(t *testing.T) rigFixture {
	t.Helper()
	s := scene.New()
	f := rigFixture{
		rig:   testutil.Object(t, s, "Rig", scene.KindArmature),
		other: testutil.Object(t, s, "Other", scene.KindArmature),
	}
	f.rig.VisibleLayers = []int{0}
	f.spine = testutil.Bone(t, f.rig, "Spine", nil)
	f.spine.Layers = []int{0}
	f.spine.Deform = true
	f.armL = testutil.Bone(t, f.rig, "Arm.L", f.spine)
	f.armL.Layers = []int{0}
	f.armR = testutil.Bone(t, f.rig, "Arm.R", f.spine)
	f.armR.Layers = []int{0}
	f.armR.Hidden = true
	f.mch = testutil.Bone(t, f.rig, "MCH-Arm", nil)
	f.mch.Layers = []int{7}
	return f
}

func TestNone(t *testing.T) {
	f := newRigFixture(t)
	assert.False(t, None()(f.mch, f.rig))
}

func TestInvisible(t *testing.T) {
	f := newRigFixture(t)
	exclude := Invisible()

	assert.False(t, exclude(f.spine, f.rig))
	assert.False(t, exclude(f.armR, f.rig), "mirror is visible")
	assert.True(t, exclude(f.mch, f.rig))
}

func TestSelected(t *testing.T) {
	f := newRigFixture(t)
	otherBone := testutil.Bone(t, f.other, "Wing", nil)

	exclude := Selected(f.rig, []string{"Arm.R"})

	assert.False(t, exclude(f.armL, f.rig), "right selection maps to the left bone")
	assert.True(t, exclude(f.armR, f.rig))
	assert.True(t, exclude(f.spine, f.rig))
	assert.True(t, exclude(otherBone, f.other))
}

func TestAny(t *testing.T) {
	f := newRigFixture(t)
	onlySpine := func(b *scene.Bone, _ *scene.Object) bool { return b == f.spine }

	exclude := Any(nil, None(), onlySpine)

	assert.True(t, exclude(f.spine, f.rig))
	assert.False(t, exclude(f.armL, f.rig))
	assert.False(t, Any()(f.spine, f.rig))
}

func TestParseExpression_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", "bone.name ==", "failed to parse exclude expression"},
		{"unknown variable", `armature.name == "Rig"`, `unknown variable "armature"`},
		{"unknown function", `file("x") == ""`, `unknown function "file"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseExpression(tc.src)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestExpressionEval(t *testing.T) {
	f := newRigFixture(t)

	testCases := []struct {
		src  string
		bone *scene.Bone
		want bool
	}{
		{`hasprefix(bone.name, "MCH-")`, f.mch, true},
		{`hasprefix(bone.name, "MCH-")`, f.spine, false},
		{`!bone.deform`, f.spine, false},
		{`bone.hidden`, f.armR, true},
		{`bone.side == "left"`, f.armL, true},
		{`bone.side == "none"`, f.spine, true},
		{`bone.class == "right_symmetric"`, f.armR, true},
		{`bone.parent == "Spine"`, f.armL, true},
		{`contains(bone.layers, 7)`, f.mch, true},
		{`object.kind == "armature" && object.name == "Rig"`, f.spine, true},
		{`matches(lower(bone.name), "^arm\\.")`, f.armL, true},
		{`hassuffix(upper(bone.name), ".R") && strlen(bone.name) == 5`, f.armR, true},
		{`"true"`, f.spine, true},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			// --- Arrange ---
			expr, err := ParseExpression(tc.src)
			require.NoError(t, err)

			// --- Act ---
			got, err := expr.Eval(tc.bone, f.rig)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpressionExclude_LogsFailures(t *testing.T) {
	// --- Arrange ---
	f := newRigFixture(t)
	ctx, logs := testutil.DebugContext(t)
	expr, err := ParseExpression(`bone.name`)
	require.NoError(t, err)
	assert.Equal(t, "bone.name", expr.String())

	// --- Act ---
	excluded := expr.Exclude(ctx)(f.spine, f.rig)

	// --- Assert ---
	assert.False(t, excluded)
	assert.Contains(t, logs.String(), "Exclude expression failed, keeping bone.")
}

func TestExpressionWithBuilder(t *testing.T) {
	f := newRigFixture(t)
	expr, err := ParseExpression(`hasprefix(bone.name, "MCH")`)
	require.NoError(t, err)

	m := graphbuilder.Build(context.Background(), []*scene.Object{f.rig}, expr.Exclude(context.Background()))

	assert.Equal(t, 2, m.NodeCount(), "Spine and the bilateral arm, the unused head is pruned")
}
