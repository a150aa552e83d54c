package nbt

// Value owns at most one tag and gives checked access to it without the
// caller switching on its concrete kind. A Value with no tag is empty; it
// is what Compound.Index leaves behind for a missing key.
type Value struct {
	tag Tag
}

// NewValue wraps t. A nil t yields an empty Value.
func NewValue(t Tag) *Value {
	return &Value{tag: t}
}

// IsEmpty reports whether the value holds no tag.
func (v *Value) IsEmpty() bool {
	return v == nil || v.tag == nil
}

// Tag returns the held tag, or nil when empty.
func (v *Value) Tag() Tag {
	if v == nil {
		return nil
	}
	return v.tag
}

// SetTag replaces the held tag, kind included. Passing nil empties the value.
func (v *Value) SetTag(t Tag) {
	v.tag = t
}

// Type reports the kind of the held tag, or TagEnd when empty.
func (v *Value) Type() TagType {
	if v.IsEmpty() {
		return TagEnd
	}
	return v.tag.Type()
}

// Compound returns the held tag as a compound.
func (v *Value) Compound() (*Compound, error) {
	c, ok := v.Tag().(*Compound)
	if !ok {
		return nil, castError(v.Type(), "Compound")
	}
	return c, nil
}

// List returns the held tag as a list.
func (v *Value) List() (*List, error) {
	l, ok := v.Tag().(*List)
	if !ok {
		return nil, castError(v.Type(), "List")
	}
	return l, nil
}

// At looks key up in the held compound. It fails with ErrInvalidCast when
// the value is not a compound and ErrNotFound when the key is missing.
func (v *Value) At(key string) (*Value, error) {
	c, err := v.Compound()
	if err != nil {
		return nil, err
	}
	return c.At(key)
}

// Index returns the entry for key in the held compound, creating an empty
// placeholder when missing. See Compound.Index.
func (v *Value) Index(key string) (*Value, error) {
	c, err := v.Compound()
	if err != nil {
		return nil, err
	}
	return c.Index(key), nil
}

// Equal reports whether both values hold tags of the same kind with equal
// payloads. Empty values are never equal to anything, themselves included.
func (v *Value) Equal(o *Value) bool {
	if v.IsEmpty() || o.IsEmpty() {
		return false
	}
	return Equal(v.tag, o.tag)
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v.IsEmpty() {
		return &Value{}
	}
	return &Value{tag: Clone(v.tag)}
}

func (v *Value) String() string {
	if v.IsEmpty() {
		return "<empty>"
	}
	return Sprint(v.tag)
}
