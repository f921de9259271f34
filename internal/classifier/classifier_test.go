package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/riggraph/internal/scene"
	"github.com/vk/riggraph/internal/testutil"
)

func newRig(t *testing.T) (*scene.Scene, *scene.Object) {
	t.Helper()
	s := scene.New()
	return s, testutil.Object(t, s, "Rig", scene.KindArmature)
}

func TestClassify_Hands(t *testing.T) {
	t.Run("matching pair is symmetric", func(t *testing.T) {
		// --- Arrange ---
		_, rig := newRig(t)
		handL := testutil.Bone(t, rig, "Hand.L", nil)
		handR := testutil.Bone(t, rig, "Hand.R", nil)

		// --- Act ---
		left := Classify(handL, rig)
		right := Classify(handR, rig)

		// --- Assert ---
		assert.Equal(t, Result{Class: LeftSymmetric, Opposite: "Hand.R", Bilateral: "Hand.↔"}, left)
		assert.Equal(t, Result{Class: RightSymmetric, Opposite: "Hand.L", Bilateral: "Hand.↔"}, right)
		assert.Equal(t, left, Classify(handL, rig), "classification is stable")
	})

	t.Run("constraint count mismatch is antisymmetric", func(t *testing.T) {
		// --- Arrange ---
		_, rig := newRig(t)
		handL := testutil.Bone(t, rig, "Hand.L", nil)
		handR := testutil.Bone(t, rig, "Hand.R", nil)
		handR.Constraints = append(handR.Constraints, testutil.Constraint("Limit", "LIMIT_ROTATION", nil, ""))

		// --- Act & Assert ---
		assert.Equal(t, Antisymmetric, Classify(handL, rig).Class)
		assert.Equal(t, Antisymmetric, Classify(handR, rig).Class)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		setup func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone
		want  Class
	}{
		{
			name: "unsided",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				return testutil.Bone(t, rig, "Spine", nil)
			},
			want: Asymmetric,
		},
		{
			name: "missing opposite",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				return testutil.Bone(t, rig, "Eye.L", nil)
			},
			want: Antisymmetric,
		},
		{
			name: "mirrored parents",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				armL := testutil.Bone(t, rig, "Arm.L", nil)
				armR := testutil.Bone(t, rig, "Arm.R", nil)
				testutil.Bone(t, rig, "Hand.R", armR)
				return testutil.Bone(t, rig, "Hand.L", armL)
			},
			want: LeftSymmetric,
		},
		{
			name: "shared unsided parent",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				spine := testutil.Bone(t, rig, "Spine", nil)
				testutil.Bone(t, rig, "Arm.L", spine)
				return testutil.Bone(t, rig, "Arm.R", spine)
			},
			want: RightSymmetric,
		},
		{
			name: "one side parented",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				spine := testutil.Bone(t, rig, "Spine", nil)
				testutil.Bone(t, rig, "Arm.L", spine)
				return testutil.Bone(t, rig, "Arm.R", nil)
			},
			want: Antisymmetric,
		},
		{
			name: "unrelated parents",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				spine := testutil.Bone(t, rig, "Spine", nil)
				neck := testutil.Bone(t, rig, "Neck", nil)
				testutil.Bone(t, rig, "Arm.L", spine)
				return testutil.Bone(t, rig, "Arm.R", neck)
			},
			want: Antisymmetric,
		},
		{
			name: "internal targets mirror",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				testutil.Bone(t, rig, "Target.L", nil)
				testutil.Bone(t, rig, "Target.R", nil)
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("IK", "IK", rig, "Target.L"))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("IK", "IK", rig, "Target.R"))
				return footL
			},
			want: LeftSymmetric,
		},
		{
			name: "internal targets identical",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				testutil.Bone(t, rig, "Target.L", nil)
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("IK", "IK", rig, "Target.L"))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("IK", "IK", rig, "Target.L"))
				return footL
			},
			want: Antisymmetric,
		},
		{
			name: "external targets identical",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				other := testutil.Object(t, s, "Other", scene.KindArmature)
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("Copy", "COPY_LOCATION", other, "Root"))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("Copy", "COPY_LOCATION", other, "Root"))
				return footR
			},
			want: RightSymmetric,
		},
		{
			name: "external targets never mirror",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				other := testutil.Object(t, s, "Other", scene.KindArmature)
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("Copy", "COPY_LOCATION", other, "Hand.L"))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("Copy", "COPY_LOCATION", other, "Hand.R"))
				return footL
			},
			want: Antisymmetric,
		},
		{
			name: "different target objects",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				a := testutil.Object(t, s, "A", scene.KindOther)
				b := testutil.Object(t, s, "B", scene.KindOther)
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("Track", "TRACK_TO", a, ""))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("Track", "TRACK_TO", b, ""))
				return footL
			},
			want: Antisymmetric,
		},
		{
			name: "different constraint types",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("C", "LIMIT_ROTATION", nil, ""))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("C", "LIMIT_SCALE", nil, ""))
				return footL
			},
			want: Antisymmetric,
		},
		{
			name: "targetless constraints match",
			setup: func(t *testing.T, s *scene.Scene, rig *scene.Object) *scene.Bone {
				footL := testutil.Bone(t, rig, "Foot.L", nil)
				footR := testutil.Bone(t, rig, "Foot.R", nil)
				footL.Constraints = append(footL.Constraints, testutil.Constraint("Limit", "LIMIT_ROTATION", nil, ""))
				footR.Constraints = append(footR.Constraints, testutil.Constraint("Other name", "LIMIT_ROTATION", nil, ""))
				return footL
			},
			want: LeftSymmetric,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			s, rig := newRig(t)
			bone := tc.setup(t, s, rig)

			// --- Act ---
			got := Classify(bone, rig)

			// --- Assert ---
			assert.Equal(t, tc.want, got.Class)
		})
	}
}

func TestClassify_PerBoneResolution(t *testing.T) {
	// ArmRiGHT derives ArmLeft, whose own opposite is ArmRight.
	_, rig := newRig(t)
	odd := testutil.Bone(t, rig, "ArmRiGHT", nil)
	left := testutil.Bone(t, rig, "ArmLeft", nil)

	assert.Equal(t, RightSymmetric, Classify(odd, rig).Class)
	assert.Equal(t, Antisymmetric, Classify(left, rig).Class)

	right := testutil.Bone(t, rig, "ArmRight", nil)
	assert.Equal(t, LeftSymmetric, Classify(left, rig).Class)
	assert.Equal(t, RightSymmetric, Classify(right, rig).Class)
	assert.Equal(t, RightSymmetric, Classify(odd, rig).Class)

	opposite, ok := Opposite(odd, rig)
	assert.True(t, ok)
	assert.Same(t, left, opposite)
}
