package plist

// copyFrontier tracks one pending container copy: the source container
// being walked and the destination container under construction.
type copyFrontier struct {
	src     *Node
	dst     *Node
	srcIter *Iterator
}

// Copy returns a deep, parentless copy of src. The traversal is
// iterative: an explicit worklist of pending containers stands in
// for the call stack, so copy depth is bounded only by available heap,
// not goroutine stack size, per the resource-model requirement in §5.
func Copy(src *Node) (*Node, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}

	leaf, err := copyLeaf(src)
	if err == nil {
		return leaf, nil
	}
	if err != errNotLeaf {
		return nil, err
	}

	root := copyEmptyContainer(src)
	var stack []*copyFrontier
	stack = append(stack, &copyFrontier{src: src, dst: root, srcIter: src.Iterator()})

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		child, ok := top.srcIter.Next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		switch top.src.kind {
		case KindDict:
			value := child.key.value
			leafCopy, err := copyLeaf(value)
			if err == nil {
				if err := top.dst.DictSet(child.key.name, leafCopy); err != nil {
					return nil, err
				}
				continue
			}
			if err != errNotLeaf {
				return nil, err
			}
			sub := copyEmptyContainer(value)
			if err := top.dst.DictSet(child.key.name, sub); err != nil {
				return nil, err
			}
			stack = append(stack, &copyFrontier{src: value, dst: sub, srcIter: value.Iterator()})

		case KindArray:
			leafCopy, err := copyLeaf(child)
			if err == nil {
				if err := top.dst.ArrayAppend(leafCopy); err != nil {
					return nil, err
				}
				continue
			}
			if err != errNotLeaf {
				return nil, err
			}
			sub := copyEmptyContainer(child)
			if err := top.dst.ArrayAppend(sub); err != nil {
				return nil, err
			}
			stack = append(stack, &copyFrontier{src: child, dst: sub, srcIter: child.Iterator()})
		}
	}

	return root, nil
}

func copyEmptyContainer(n *Node) *Node {
	if n.kind == KindDict {
		return NewDict()
	}
	return NewArray()
}

// errNotLeaf signals copyLeaf was asked to copy a container; it is
// internal, never returned to callers of Copy.
var errNotLeaf = errInternalNotLeaf{}

type errInternalNotLeaf struct{}

func (errInternalNotLeaf) Error() string { return "plist: not a leaf" }

func copyLeaf(n *Node) (*Node, error) {
	switch n.kind {
	case KindData:
		return NewData(n.data), nil
	case KindDate:
		return NewDate(n.date), nil
	case KindString:
		return NewString(n.str), nil
	case KindInteger:
		return NewInteger(n.integer), nil
	case KindReal:
		return NewReal(n.real), nil
	case KindBoolean:
		return NewBoolean(n.boolean), nil
	case KindDict, KindArray:
		return nil, errNotLeaf
	default:
		return nil, ErrInvalidKind
	}
}
