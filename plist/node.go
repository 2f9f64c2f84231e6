package plist

import "fmt"

// Date is a broken-down calendar time with an explicit UTC offset, the
// extension §3 adds on top of classic OpenStep ASCII plists.
type Date struct {
	Year, Month, Day       int
	Hour, Minute, Second   int
	TZOffsetSeconds        int // seconds east of UTC
}

// Node is a tagged-union tree element: exactly one of the payload fields
// below is valid, selected by kind. Every non-root Node has a non-owning
// parent pointer; the container holding it (dict/key/array) is the sole
// owner.
type Node struct {
	kind   Kind
	parent *Node

	dict    *dictPayload
	key     *keyPayload
	array   *arrayPayload
	data    []byte
	date    Date
	str     string
	integer int64
	real    float64
	boolean bool
}

type dictPayload struct {
	keys  []*Node // KindKey children, insertion order
	index map[string]int
}

type keyPayload struct {
	name  string
	value *Node

	// colonSeen guards against a second ':' following the same key
	// string before a value has been attached.
	colonSeen bool
}

type arrayPayload struct {
	elems []*Node

	// hasPendingComma is true immediately after a ',' has been scanned
	// and before the next value has been attached, so a second ','
	// or a closing ')' in that position can be rejected.
	hasPendingComma bool
}

// Kind returns the node's tagged kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindUnknown
	}
	return n.kind
}

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Is reports whether n is of the given kind.
func (n *Node) Is(k Kind) bool {
	return n != nil && n.kind == k
}

// NewDict returns a fresh, empty, parentless Dict node.
func NewDict() *Node {
	return &Node{kind: KindDict, dict: &dictPayload{index: make(map[string]int)}}
}

// NewArray returns a fresh, empty, parentless Array node.
func NewArray() *Node {
	return &Node{kind: KindArray, array: &arrayPayload{}}
}

// NewData returns a parentless Data node that owns a copy of buf.
func NewData(buf []byte) *Node {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	return &Node{kind: KindData, data: cp}
}

// NewDate returns a parentless Date node.
func NewDate(d Date) *Node {
	return &Node{kind: KindDate, date: d}
}

// NewString returns a parentless String node that owns a copy of s.
func NewString(s string) *Node {
	return &Node{kind: KindString, str: s}
}

// NewStringf is equivalent to NewString(fmt.Sprintf(format, args...)).
func NewStringf(format string, args ...any) *Node {
	return NewString(fmt.Sprintf(format, args...))
}

// NewInteger returns a parentless Integer node.
func NewInteger(v int64) *Node {
	return &Node{kind: KindInteger, integer: v}
}

// NewReal returns a parentless Real node.
func NewReal(v float64) *Node {
	return &Node{kind: KindReal, real: v}
}

// NewBoolean returns a parentless Boolean node.
func NewBoolean(v bool) *Node {
	return &Node{kind: KindBoolean, boolean: v}
}

// Data returns the byte buffer of a Data node, or nil for any other kind.
func (n *Node) Data() []byte {
	if n == nil || n.kind != KindData {
		return nil
	}
	return n.data
}

// DateValue returns the broken-down time of a Date node.
func (n *Node) DateValue() Date {
	if n == nil || n.kind != KindDate {
		return Date{}
	}
	return n.date
}

// StringValue returns the string of a String node, or a Key node's name.
func (n *Node) StringValue() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case KindString:
		return n.str
	case KindKey:
		return n.key.name
	default:
		return ""
	}
}

// IntegerValue returns the value of an Integer node.
func (n *Node) IntegerValue() int64 {
	if n == nil || n.kind != KindInteger {
		return 0
	}
	return n.integer
}

// RealValue returns the value of a Real node.
func (n *Node) RealValue() float64 {
	if n == nil || n.kind != KindReal {
		return 0
	}
	return n.real
}

// BooleanValue returns the value of a Boolean node.
func (n *Node) BooleanValue() bool {
	if n == nil || n.kind != KindBoolean {
		return false
	}
	return n.boolean
}

// KeyName returns the name of a Key node.
func (n *Node) KeyName() string {
	if n == nil || n.kind != KindKey {
		return ""
	}
	return n.key.name
}

// KeyValue returns the value Node held by a Key node.
func (n *Node) KeyValue() *Node {
	if n == nil || n.kind != KindKey {
		return nil
	}
	return n.key.value
}

// newKey constructs a Key node directly from an accumulated name, per the
// recommendation in §9: the parser never mutates a completed String node
// in place.
func newKey(name string) *Node {
	return &Node{kind: KindKey, key: &keyPayload{name: name}}
}
