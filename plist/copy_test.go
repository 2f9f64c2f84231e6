package plist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// snapshot flattens a tree into a comparable plain-Go value, since Node
// itself carries unexported fields and parent back-pointers that would
// make a direct go-cmp.Diff across trees noisy and cycle-prone.
func snapshot(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindDict:
		m := map[string]any{}
		for _, entry := range n.dict.keys {
			m[entry.key.name] = snapshot(entry.key.value)
		}
		return m
	case KindArray:
		s := make([]any, n.ArrayLen())
		for i := 0; i < n.ArrayLen(); i++ {
			s[i] = snapshot(n.ArrayGet(i))
		}
		return s
	case KindData:
		return append([]byte(nil), n.data...)
	case KindDate:
		return n.date
	case KindString:
		return n.str
	case KindInteger:
		return n.integer
	case KindReal:
		return n.real
	case KindBoolean:
		return n.boolean
	default:
		return n.kind
	}
}

func buildSample() *Node {
	root := NewDict()
	_ = root.DictSet("name", NewString("Alice"))
	_ = root.DictSet("age", NewInteger(37))
	nums := NewArray()
	_ = nums.ArrayAppend(NewInteger(1))
	_ = nums.ArrayAppend(NewReal(2.5))
	_ = nums.ArrayAppend(NewBoolean(true))
	_ = root.DictSet("nums", nums)
	_ = root.DictSet("blob", NewData([]byte{0xca, 0xfe}))
	return root
}

func TestCopyIsStructurallyEqualAndDisjoint(t *testing.T) {
	src := buildSample()
	dst, err := Copy(src)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if diff := cmp.Diff(snapshot(src), snapshot(dst)); diff != "" {
		t.Fatalf("Copy produced a structurally different tree:\n%s", diff)
	}

	// Disjoint storage: mutating the copy must not affect the source.
	dstNums := dst.DictGet("nums")
	_ = dstNums.ArrayAppend(NewInteger(99))
	if got := src.DictGet("nums").ArrayLen(); got != 3 {
		t.Fatalf("mutating copy affected source array, len = %d", got)
	}

	if dst.Parent() != nil {
		t.Fatalf("Copy result should be parentless")
	}
}

func TestCopyLeaf(t *testing.T) {
	src := NewString("hello")
	dst, err := Copy(src)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if dst == src {
		t.Fatalf("Copy of a leaf must allocate a new Node")
	}
	if dst.StringValue() != "hello" {
		t.Fatalf("StringValue() = %q", dst.StringValue())
	}
}

func TestCopyNilIsInvalidArgument(t *testing.T) {
	if _, err := Copy(nil); err == nil {
		t.Fatalf("Copy(nil) should error")
	}
}

func TestCopyDeeplyNestedDoesNotPanic(t *testing.T) {
	root := NewArray()
	cur := root
	const depth = 5000
	for i := 0; i < depth; i++ {
		next := NewArray()
		_ = cur.ArrayAppend(next)
		cur = next
	}
	_ = cur.ArrayAppend(NewInteger(1))

	dst, err := Copy(root)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	walk := dst
	count := 0
	for walk.ArrayLen() == 1 && walk.ArrayGet(0).Kind() == KindArray {
		walk = walk.ArrayGet(0)
		count++
	}
	if count != depth {
		t.Fatalf("copied depth = %d, want %d", count, depth)
	}
}
