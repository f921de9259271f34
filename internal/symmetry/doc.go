// Package symmetry detects left/right side markers embedded in names and
// derives mirror names from them.
//
// # Marker Forms
//
// A name is sided when, after a trailing numeric suffix such as ".003" is set
// aside, it carries one of the following markers. Checks run in this order and
// the first hit wins:
//
//  1. A one-letter suffix after a separator: "_R", ".r", "-L", " l".
//  2. A word suffix: "RIGHT", "Right", "right", "LEFT", "Left", "left".
//  3. A one-letter prefix before a separator: "R_", "r.", "L-", "l ".
//  4. A word prefix: "RIGHTArm", "RightArm", "rightArm", and so on.
//
// Word case is judged by the first two letters only, so "RiGHT" reads as
// Capitalized and its mirror is "Left". The derived opposite always uses the
// canonical spelling of the matched case style.
//
// The bilateral name replaces the marker with MirrorGlyph and is used as the
// display label of a part that has a genuine mirror counterpart.
package symmetry
