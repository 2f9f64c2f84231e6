package plist

import "testing"

func TestIteratorOverArray(t *testing.T) {
	a := NewArray()
	_ = a.ArrayAppend(NewInteger(1))
	_ = a.ArrayAppend(NewInteger(2))
	_ = a.ArrayAppend(NewInteger(3))

	it := a.Iterator()
	if it.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", it.Len())
	}
	var got []int64
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, n.IntegerValue())
	}
	want := []int64{1, 2, 3}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestIteratorOverDictYieldsKeyNodes(t *testing.T) {
	d := NewDict()
	_ = d.DictSet("a", NewInteger(1))
	_ = d.DictSet("b", NewInteger(2))

	it := d.Iterator()
	var names []string
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		if !n.Is(KindKey) {
			t.Fatalf("dict iterator yielded non-Key node %v", n.Kind())
		}
		names = append(names, n.KeyName())
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
}

func TestIteratorResetRewinds(t *testing.T) {
	a := NewArray()
	_ = a.ArrayAppend(NewInteger(1))
	it := a.Iterator()
	it.Next()
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhaustion after one element")
	}
	it.Reset()
	if _, ok := it.Next(); !ok {
		t.Fatalf("expected an element after Reset")
	}
}

func TestIteratorOverLeafIsEmpty(t *testing.T) {
	it := NewString("x").Iterator()
	if it.Len() != 0 {
		t.Fatalf("Iterator over a leaf should be empty, Len() = %d", it.Len())
	}
}
