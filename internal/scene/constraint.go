package scene

// Constraint is a typed, named reference from an object or bone to a target.
type Constraint struct {
	Name   string
	Type   string
	Target Target
}

// Target is what a constraint points at: NoTarget, ObjectTarget or
// SubpartTarget.
type Target interface {
	isTarget()
}

// NoTarget is a constraint without a target.
type NoTarget struct{}

// ObjectTarget points at a whole object.
type ObjectTarget struct {
	Object *Object
}

// SubpartTarget points at a named bone or vertex group inside Object. The name
// is kept verbatim and may not resolve.
type SubpartTarget struct {
	Object  *Object
	Subpart string
}

func (NoTarget) isTarget()      {}
func (ObjectTarget) isTarget()  {}
func (SubpartTarget) isTarget() {}

// TargetOf builds the target for an optional object and subtarget name.
func TargetOf(obj *Object, subpart string) Target {
	switch {
	case obj == nil:
		return NoTarget{}
	case subpart == "":
		return ObjectTarget{Object: obj}
	default:
		return SubpartTarget{Object: obj, Subpart: subpart}
	}
}

// TargetObject returns the object c points at, or nil.
func (c *Constraint) TargetObject() *Object {
	switch t := c.Target.(type) {
	case ObjectTarget:
		return t.Object
	case SubpartTarget:
		return t.Object
	default:
		return nil
	}
}

// Subtarget returns the sub-part name c points at, or "".
func (c *Constraint) Subtarget() string {
	if t, ok := c.Target.(SubpartTarget); ok {
		return t.Subpart
	}
	return ""
}
