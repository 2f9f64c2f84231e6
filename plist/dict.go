package plist

// DictSet inserts or replaces the value at key within d. If key already
// exists, its prior value node is released; callers that need the old
// value back should DictPop it first.
func (d *Node) DictSet(key string, value *Node) error {
	if d == nil || d.kind != KindDict {
		return ErrInvalidKind
	}
	if value == nil {
		return ErrInvalidArgument
	}
	if value.parent != nil {
		return ErrAlreadyAttached
	}

	if idx, ok := d.dict.index[key]; ok {
		entry := d.dict.keys[idx]
		Free(entry.key.value)
		entry.key.value = value
		value.parent = entry
		return nil
	}

	entry := newKey(key)
	entry.parent = d
	entry.key.value = value
	value.parent = entry

	d.dict.index[key] = len(d.dict.keys)
	d.dict.keys = append(d.dict.keys, entry)
	return nil
}

// DictHas reports whether key is present in d.
func (d *Node) DictHas(key string) bool {
	if d == nil || d.kind != KindDict {
		return false
	}
	_, ok := d.dict.index[key]
	return ok
}

// DictGet returns the value Node stored at key, or nil if absent.
func (d *Node) DictGet(key string) *Node {
	if d == nil || d.kind != KindDict {
		return nil
	}
	idx, ok := d.dict.index[key]
	if !ok {
		return nil
	}
	return d.dict.keys[idx].key.value
}

// DictPop removes key from d and returns its detached value Node, leaving
// the caller responsible for freeing it. Returns ErrNotFound if key is
// absent.
func (d *Node) DictPop(key string) (*Node, error) {
	if d == nil || d.kind != KindDict {
		return nil, ErrInvalidKind
	}
	idx, ok := d.dict.index[key]
	if !ok {
		return nil, ErrNotFound
	}

	entry := d.dict.keys[idx]
	value := entry.key.value
	value.parent = nil
	entry.key.value = nil
	entry.parent = nil

	d.dict.keys = append(d.dict.keys[:idx], d.dict.keys[idx+1:]...)
	delete(d.dict.index, key)
	for k := idx; k < len(d.dict.keys); k++ {
		d.dict.index[d.dict.keys[k].key.name] = k
	}
	return value, nil
}

// DictDel removes key from d and frees its value subtree. Returns
// ErrNotFound if key is absent.
func (d *Node) DictDel(key string) error {
	value, err := d.DictPop(key)
	if err != nil {
		return err
	}
	Free(value)
	return nil
}

// DictKeys returns the dict's key names in insertion order.
func (d *Node) DictKeys() []string {
	if d == nil || d.kind != KindDict {
		return nil
	}
	names := make([]string, len(d.dict.keys))
	for i, entry := range d.dict.keys {
		names[i] = entry.key.name
	}
	return names
}

// DictLen returns the number of entries in d.
func (d *Node) DictLen() int {
	if d == nil || d.kind != KindDict {
		return 0
	}
	return len(d.dict.keys)
}

// DictUpdate merges other's entries into d as a single transaction:
// either every entry copies across, or d is left completely unmodified.
// other may be a Dict, a single Key, or an Array whose elements are all
// Keys; any other shape fails with ErrInvalidKind. Each contributed
// Key's value is deep-copied, not moved, so other is left intact and
// independently owned. This mirrors the staged-copy approach the design
// notes in §9 require in place of a two-phase commit/rollback over live
// state, since a failure partway through a live copy loop could
// otherwise leave d with some entries applied and others not.
func (d *Node) DictUpdate(other *Node) error {
	if d == nil || d.kind != KindDict {
		return ErrInvalidKind
	}
	sources, err := updateSources(other)
	if err != nil {
		return err
	}

	type pending struct {
		name  string
		value *Node
	}
	staged := make([]pending, 0, len(sources))
	for _, entry := range sources {
		cp, err := Copy(entry.key.value)
		if err != nil {
			for _, p := range staged {
				Free(p.value)
			}
			return err
		}
		staged = append(staged, pending{name: entry.key.name, value: cp})
	}

	for _, p := range staged {
		if idx, ok := d.dict.index[p.name]; ok {
			old := d.dict.keys[idx]
			Free(old.key.value)
			old.key.value = p.value
			p.value.parent = old
			continue
		}
		entry := newKey(p.name)
		entry.parent = d
		entry.key.value = p.value
		p.value.parent = entry
		d.dict.index[p.name] = len(d.dict.keys)
		d.dict.keys = append(d.dict.keys, entry)
	}
	return nil
}

// updateSources resolves the three shapes DictUpdate accepts (a Dict, a
// single Key, or an Array whose elements are all Keys) into the flat
// list of Key nodes it should stage, or ErrInvalidKind for anything
// else.
func updateSources(other *Node) ([]*Node, error) {
	if other == nil {
		return nil, ErrInvalidKind
	}
	switch other.kind {
	case KindDict:
		return other.dict.keys, nil
	case KindKey:
		return []*Node{other}, nil
	case KindArray:
		for _, elem := range other.array.elems {
			if elem.kind != KindKey {
				return nil, ErrInvalidKind
			}
		}
		return other.array.elems, nil
	default:
		return nil, ErrInvalidKind
	}
}
