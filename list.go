package nbt

import (
	"fmt"
	"iter"
)

// List is an ordered sequence of unnamed tags that all share one kind.
// An empty list created with element type TagEnd adopts the kind of the
// first tag appended to it.
type List struct {
	elemType TagType
	elems    []Tag
}

// NewList returns an empty list whose elements must be of kind elemType.
func NewList(elemType TagType) *List {
	return &List{elemType: elemType}
}

// ListOf builds a list from tags, taking the element type from the first one.
func ListOf(tags ...Tag) (*List, error) {
	l := &List{elems: make([]Tag, 0, len(tags))}
	for _, t := range tags {
		if err := l.Append(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (*List) Type() TagType { return TagList }
func (*List) isTag()        {}

// ElemType reports the declared kind of the list's elements.
func (l *List) ElemType() TagType {
	return l.elemType
}

// SetElemType declares the element kind of an empty list.
func (l *List) SetElemType(t TagType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: undefined element type %d", ErrTypeMismatch, uint8(t))
	}
	if len(l.elems) > 0 && t != l.elemType {
		return fmt.Errorf("%w: list of %s already holds %d elements", ErrTypeMismatch, l.elemType, len(l.elems))
	}
	l.elemType = t
	return nil
}

func (l *List) Len() int {
	return len(l.elems)
}

// At returns the i-th element.
func (l *List) At(i int) (Tag, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, notFound("list index %d out of range [0,%d)", i, len(l.elems))
	}
	return l.elems[i], nil
}

// Set replaces the i-th element. The replacement must match the element type.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.elems) {
		return notFound("list index %d out of range [0,%d)", i, len(l.elems))
	}
	if err := l.check(t); err != nil {
		return err
	}
	l.elems[i] = t
	return nil
}

// Append adds t to the end of the list. On a kind mismatch the list is
// left unchanged and ErrTypeMismatch is returned.
func (l *List) Append(t Tag) error {
	if t == nil {
		return fmt.Errorf("%w: nil element", ErrTypeMismatch)
	}
	if l.elemType == TagEnd && len(l.elems) == 0 {
		l.elemType = t.Type()
	} else if err := l.check(t); err != nil {
		return err
	}
	l.elems = append(l.elems, t)
	return nil
}

func (l *List) check(t Tag) error {
	if t == nil {
		return fmt.Errorf("%w: nil element", ErrTypeMismatch)
	}
	if t.Type() != l.elemType {
		return fmt.Errorf("%w: cannot store %s in list of %s", ErrTypeMismatch, t.Type(), l.elemType)
	}
	return nil
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range l.elems {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Equal reports whether both lists declare the same element type and hold
// pairwise equal elements.
func (l *List) Equal(o *List) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.elemType != o.elemType || len(l.elems) != len(o.elems) {
		return false
	}
	for i := range l.elems {
		if !Equal(l.elems[i], o.elems[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	out := &List{elemType: l.elemType, elems: make([]Tag, len(l.elems))}
	for i, t := range l.elems {
		out.elems[i] = Clone(t)
	}
	return out
}

// appendUnchecked is used by the decoder, which already guarantees the kind.
func (l *List) appendUnchecked(t Tag) {
	l.elems = append(l.elems, t)
}
