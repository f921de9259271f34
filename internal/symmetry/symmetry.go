package symmetry

import "regexp"

// MirrorGlyph replaces the side marker in a bilateral name.
const MirrorGlyph = "↔"

// Side is the side of the body a name refers to.
type Side int

const (
	Left Side = iota + 1
	Right
)

// Opposite returns the mirrored side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// SidedName is the result of parsing a name that carries a side marker.
type SidedName struct {
	Side      Side
	Opposite  string
	Bilateral string
}

// marker is one recognized side marker. The first capture group of re spans
// the text that gets swapped for mirror (or for MirrorGlyph).
type marker struct {
	re     *regexp.Regexp
	side   Side
	mirror string
}

var numericSuffix = regexp.MustCompile(`\.\d+$`)

var markers = compileMarkers()

func compileMarkers() []marker {
	const sep = `[_.\- ]`
	type word struct {
		pattern string
		side    Side
		mirror  string
	}
	letters := []word{
		{"r", Right, "l"},
		{"R", Right, "L"},
		{"l", Left, "r"},
		{"L", Left, "R"},
	}
	words := []word{
		{"RI[gG][hH][tT]", Right, "LEFT"},
		{"Ri[gG][hH][tT]", Right, "Left"},
		{"r[iI][gG][hH][tT]", Right, "left"},
		{"LE[fF][tT]", Left, "RIGHT"},
		{"Le[fF][tT]", Left, "Right"},
		{"l[eE][fF][tT]", Left, "right"},
	}
	// Prefix letters are checked upper case first.
	prefixLetters := []word{letters[1], letters[0], letters[3], letters[2]}

	var out []marker
	add := func(expr string, w word) {
		out = append(out, marker{re: regexp.MustCompile(expr), side: w.side, mirror: w.mirror})
	}
	for _, w := range letters {
		add(sep+`(`+w.pattern+`)$`, w)
	}
	for _, w := range words {
		add(`(`+w.pattern+`)$`, w)
	}
	for _, w := range prefixLetters {
		add(`^(`+w.pattern+`)`+sep, w)
	}
	for _, w := range words {
		add(`^(`+w.pattern+`)`, w)
	}
	return out
}

// ParseSidedName reports whether name carries a side marker and, if so,
// returns its side together with the opposite and bilateral names. A trailing
// numeric suffix is preserved verbatim on both derived names.
func ParseSidedName(name string) (SidedName, bool) {
	stem, number := name, ""
	if loc := numericSuffix.FindStringIndex(name); loc != nil {
		stem, number = name[:loc[0]], name[loc[0]:]
	}

	for _, m := range markers {
		loc := m.re.FindStringSubmatchIndex(stem)
		if loc == nil {
			continue
		}
		head, tail := stem[:loc[2]], stem[loc[3]:]
		return SidedName{
			Side:      m.side,
			Opposite:  head + m.mirror + tail + number,
			Bilateral: head + MirrorGlyph + tail + number,
		}, true
	}
	return SidedName{}, false
}

// SymmetricMatch reports whether a and b name mirror counterparts. Equal names
// match only when unsided. Unequal names match when both are sided on opposite
// sides and each is exactly the derived opposite of the other.
func SymmetricMatch(a, b string) bool {
	pa, aSided := ParseSidedName(a)
	if a == b {
		return !aSided
	}
	pb, bSided := ParseSidedName(b)
	if !aSided || !bSided {
		return false
	}
	return pa.Side != pb.Side && pa.Opposite == b && pb.Opposite == a
}
