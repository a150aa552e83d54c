package nbt

import (
	"iter"
	"slices"
)

// Compound maps names to child tags. Keys are unique and iterate in
// insertion order so decoded data re-encodes byte for byte.
type Compound struct {
	keys    []string
	entries map[string]*Value
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{entries: make(map[string]*Value)}
}

func (*Compound) Type() TagType { return TagCompound }
func (*Compound) isTag()        {}

func (c *Compound) Len() int {
	return len(c.keys)
}

// Has reports whether key is present, including placeholder entries.
func (c *Compound) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys returns the keys in insertion order.
func (c *Compound) Keys() []string {
	return slices.Clone(c.keys)
}

// At returns the entry stored under key, or ErrNotFound.
// Unlike Index it never modifies the compound.
func (c *Compound) At(key string) (*Value, error) {
	v, ok := c.entries[key]
	if !ok {
		return nil, notFound("compound key %q", key)
	}
	return v, nil
}

// Index returns the entry stored under key, creating an empty placeholder
// entry when the key is missing. Beware that a plain read through Index
// therefore grows the compound; use At for lookups that must not.
func (c *Compound) Index(key string) *Value {
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := &Value{}
	c.insert(key, v)
	return v
}

// Get returns the tag stored under key. Placeholder entries report false.
func (c *Compound) Get(key string) (Tag, bool) {
	v, ok := c.entries[key]
	if !ok || v.tag == nil {
		return nil, false
	}
	return v.tag, true
}

// Put stores t under key, replacing any previous entry. It reports whether
// the key was newly inserted.
func (c *Compound) Put(key string, t Tag) bool {
	if v, ok := c.entries[key]; ok {
		v.tag = t
		return false
	}
	c.insert(key, &Value{tag: t})
	return true
}

// Delete removes key and reports whether it was present.
func (c *Compound) Delete(key string) bool {
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })
	return true
}

// All iterates over the entries in insertion order.
func (c *Compound) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range c.keys {
			if !yield(k, c.entries[k]) {
				return
			}
		}
	}
}

// Equal reports whether both compounds hold the same keys with equal tags.
// Order is not significant. Two placeholder entries under the same key
// compare equal here even though Value.Equal rejects empty values.
func (c *Compound) Equal(o *Compound) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.keys) != len(o.keys) {
		return false
	}
	for k, v := range c.entries {
		ov, ok := o.entries[k]
		if !ok {
			return false
		}
		if v.tag == nil && ov.tag == nil {
			continue
		}
		if !Equal(v.tag, ov.tag) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of c.
func (c *Compound) Clone() *Compound {
	out := &Compound{
		keys:    slices.Clone(c.keys),
		entries: make(map[string]*Value, len(c.entries)),
	}
	for k, v := range c.entries {
		out.entries[k] = v.Clone()
	}
	return out
}

func (c *Compound) insert(key string, v *Value) {
	if c.entries == nil {
		c.entries = make(map[string]*Value)
	}
	c.keys = append(c.keys, key)
	c.entries[key] = v
}
