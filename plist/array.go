package plist

// ArrayAppend appends value to a's element list in O(1) amortized time,
// per the append invariant in §4.1.
func (a *Node) ArrayAppend(value *Node) error {
	if a == nil || a.kind != KindArray {
		return ErrInvalidKind
	}
	if value == nil {
		return ErrInvalidArgument
	}
	if value.parent != nil {
		return ErrAlreadyAttached
	}
	value.parent = a
	a.array.elems = append(a.array.elems, value)
	return nil
}

// ArrayInsert inserts value at index idx, shifting later elements right.
// idx == ArrayLen(a) is equivalent to ArrayAppend.
func (a *Node) ArrayInsert(idx int, value *Node) error {
	if a == nil || a.kind != KindArray {
		return ErrInvalidKind
	}
	if value == nil {
		return ErrInvalidArgument
	}
	if value.parent != nil {
		return ErrAlreadyAttached
	}
	if idx < 0 || idx > len(a.array.elems) {
		return ErrOutOfRange
	}
	value.parent = a
	a.array.elems = append(a.array.elems, nil)
	copy(a.array.elems[idx+1:], a.array.elems[idx:])
	a.array.elems[idx] = value
	return nil
}

// ArrayGet returns the element at idx, or nil if idx is out of range.
func (a *Node) ArrayGet(idx int) *Node {
	if a == nil || a.kind != KindArray {
		return nil
	}
	if idx < 0 || idx >= len(a.array.elems) {
		return nil
	}
	return a.array.elems[idx]
}

// ArrayLen returns the number of elements in a.
func (a *Node) ArrayLen() int {
	if a == nil || a.kind != KindArray {
		return 0
	}
	return len(a.array.elems)
}

// ArrayPop removes and returns the element at idx, detached from a,
// leaving the caller responsible for freeing it.
func (a *Node) ArrayPop(idx int) (*Node, error) {
	if a == nil || a.kind != KindArray {
		return nil, ErrInvalidKind
	}
	if idx < 0 || idx >= len(a.array.elems) {
		return nil, ErrOutOfRange
	}
	value := a.array.elems[idx]
	value.parent = nil
	a.array.elems = append(a.array.elems[:idx], a.array.elems[idx+1:]...)
	return value, nil
}

// ArrayDel removes the element at idx and frees its subtree.
func (a *Node) ArrayDel(idx int) error {
	value, err := a.ArrayPop(idx)
	if err != nil {
		return err
	}
	Free(value)
	return nil
}
