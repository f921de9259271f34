package symmetry

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSidedName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		side      Side
		opposite  string
		bilateral string
	}{
		{"dot upper suffix", "Arm.R", Right, "Arm.L", "Arm.↔"},
		{"dot lower suffix", "arm.l", Left, "arm.r", "arm.↔"},
		{"underscore suffix", "Leg_R", Right, "Leg_L", "Leg_↔"},
		{"dash suffix", "leg-l", Left, "leg-r", "leg-↔"},
		{"space suffix", "Hand R", Right, "Hand L", "Hand ↔"},
		{"numeric suffix kept", "Arm.R.003", Right, "Arm.L.003", "Arm.↔.003"},
		{"all caps word suffix", "ARMRIGHT", Right, "ARMLEFT", "ARM↔"},
		{"capitalized word suffix", "ArmLeft", Left, "ArmRight", "Arm↔"},
		{"lower word suffix", "arm_left", Left, "arm_right", "arm_↔"},
		{"mixed tail letters", "ArmRiGHT", Right, "ArmLeft", "Arm↔"},
		{"upper letter prefix", "R_Foot", Right, "L_Foot", "↔_Foot"},
		{"lower letter prefix", "l.foot", Left, "r.foot", "↔.foot"},
		{"space letter prefix", "L Foot.001", Left, "R Foot.001", "↔ Foot.001"},
		{"word prefix", "LeftFoot", Left, "RightFoot", "↔Foot"},
		{"all caps word prefix", "RIGHT_foot", Right, "LEFT_foot", "↔_foot"},
		{"lower word prefix with mixed tail", "rIGHTArm", Right, "leftArm", "↔Arm"},
		{"suffix beats prefix", "L_Arm.R", Right, "L_Arm.L", "L_Arm.↔"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, ok := ParseSidedName(tc.input)

			// --- Assert ---
			require.True(t, ok)
			assert.Equal(t, tc.side, got.Side)
			assert.Equal(t, tc.opposite, got.Opposite)
			assert.Equal(t, tc.bilateral, got.Bilateral)
		})
	}
}

func TestParseSidedName_Unsided(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "Spine", "Root.001", "Arm.X", "ArmR", "R", "Rib"} {
		_, ok := ParseSidedName(input)
		assert.False(t, ok, "expected %q to be unsided", input)
	}
}

func TestSymmetricMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal unsided", "Spine", "Spine", true},
		{"both blank", "", "", true},
		{"equal sided", "Arm.L", "Arm.L", false},
		{"mirror pair", "Arm.L", "Arm.R", true},
		{"same side", "Arm.L", "Leg.L", false},
		{"one unsided", "Arm.L", "Arm", false},
		{"case collision", "ArmRiGHT", "ArmLeft", false},
		{"numeric suffix mismatch", "Arm.L.001", "Arm.R.002", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SymmetricMatch(tc.a, tc.b))
			assert.Equal(t, tc.want, SymmetricMatch(tc.b, tc.a))
		})
	}
}

func TestSide(t *testing.T) {
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "none", Side(0).String())
}

func TestSymmetryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	forms := []any{
		"%s_R", "%s_L", "%s.r", "%s.l", "%s-R", "%s l",
		"%sRIGHT", "%sRight", "%sright", "%sLEFT", "%sLeft", "%sleft",
		"R_%s", "L.%s", "r-%s", "l %s",
		"RIGHT%s", "Right%s", "right%s", "LEFT%s", "Left%s", "left%s",
	}
	// Stems avoid the letters l and r so they never form a marker themselves.
	stems := gen.RegexMatch(`[a-km-qs-z]{1,8}`)
	numbers := gen.IntRange(-1, 999)

	sided := func(form string, stem string, n int) string {
		name := fmt.Sprintf(form, stem)
		if n >= 0 {
			name += fmt.Sprintf(".%03d", n)
		}
		return name
	}

	properties.Property("opposite of opposite is the original name", prop.ForAll(
		func(form string, stem string, n int) bool {
			name := sided(form, stem, n)
			first, ok := ParseSidedName(name)
			if !ok {
				return false
			}
			second, ok := ParseSidedName(first.Opposite)
			return ok && second.Side == first.Side.Opposite() && second.Opposite == name
		},
		gen.OneConstOf(forms...),
		stems,
		numbers,
	))

	properties.Property("mirror pairs match", prop.ForAll(
		func(form string, stem string, n int) bool {
			name := sided(form, stem, n)
			parsed, _ := ParseSidedName(name)
			return SymmetricMatch(name, parsed.Opposite)
		},
		gen.OneConstOf(forms...),
		stems,
		numbers,
	))

	properties.Property("match is symmetric", prop.ForAll(
		func(a, b string) bool {
			return SymmetricMatch(a, b) == SymmetricMatch(b, a)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
