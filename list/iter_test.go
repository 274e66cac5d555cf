package list

import (
	"testing"
)

func TestIterForward(t *testing.T) {
	values := []int64{3, 4, 0, 1, 2, 5, 6, 7, 8}
	it := FromSlice(values).Iter()

	for i, want := range values {
		v, ok := it.Next()
		if !ok {
			t.Fatalf("cursor exhausted after %d of %d elements", i, len(values))
		}
		if v != want {
			t.Errorf("element at index %d mismatch, expected %d but found %d", i, want, v)
		}
	}

	if v, ok := it.Next(); ok {
		t.Errorf("cursor yielded %d after the last element", v)
	}
	if v, ok := it.NextBack(); ok {
		t.Errorf("backward cursor yielded %d after the forward cursor consumed the list", v)
	}
}

func TestIterBackward(t *testing.T) {
	values := []int64{3, 4, 0, 1, 2, 5, 6, 7, 8}
	it := FromSlice(values).Iter()

	for i := len(values) - 1; i >= 0; i-- {
		v, ok := it.NextBack()
		if !ok {
			t.Fatalf("cursor exhausted before element at index %d", i)
		}
		if v != values[i] {
			t.Errorf("element at index %d mismatch, expected %d but found %d", i, values[i], v)
		}
	}

	if v, ok := it.NextBack(); ok {
		t.Errorf("cursor yielded %d after the last element", v)
	}
	if v, ok := it.Next(); ok {
		t.Errorf("forward cursor yielded %d after the backward cursor consumed the list", v)
	}
}

// Interleaving the two directions must yield each element exactly once, even
// when the list is full of duplicate values: the cursors converge on a node,
// not on a value.
func TestIterInterleaved(t *testing.T) {
	values := []int64{7, 7, 7, 7, 7}
	it := FromSlice(values).Iter()

	yielded := 0
	forward := true
	for {
		var ok bool
		if forward {
			_, ok = it.Next()
		} else {
			_, ok = it.NextBack()
		}
		if !ok {
			break
		}
		yielded++
		forward = !forward
	}

	if yielded != len(values) {
		t.Errorf("interleaved traversal yielded %d elements, expected %d", yielded, len(values))
	}
}

func TestIterInterleavedOrder(t *testing.T) {
	it := FromSlice([]int64{1, 2, 3, 4}).Iter()

	steps := []struct {
		back bool
		want int64
	}{
		{false, 1},
		{true, 4},
		{false, 2},
		{true, 3},
	}

	for i, step := range steps {
		var v int64
		var ok bool
		if step.back {
			v, ok = it.NextBack()
		} else {
			v, ok = it.Next()
		}
		if !ok {
			t.Fatalf("cursor exhausted at step %d", i)
		}
		if v != step.want {
			t.Errorf("step %d mismatch, expected %d but found %d", i, step.want, v)
		}
	}

	if _, ok := it.Next(); ok {
		t.Error("forward cursor yielded an element after convergence")
	}
	if _, ok := it.NextBack(); ok {
		t.Error("backward cursor yielded an element after convergence")
	}
}

func TestIterSingleElement(t *testing.T) {
	it := FromSlice([]int64{42}).Iter()

	if v, ok := it.Next(); !ok || v != 42 {
		t.Errorf("expected (42, true) but found (%d, %t)", v, ok)
	}
	if _, ok := it.NextBack(); ok {
		t.Error("backward cursor double-yielded the only element")
	}
}

func TestIterEmpty(t *testing.T) {
	it := New().Iter()

	if _, ok := it.Next(); ok {
		t.Error("forward cursor yielded an element from an empty list")
	}
	if _, ok := it.NextBack(); ok {
		t.Error("backward cursor yielded an element from an empty list")
	}
}

func TestIterMut(t *testing.T) {
	l := FromSlice([]int64{1, 2, 3, 4})

	for it := l.IterMut(); ; {
		node, ok := it.Next()
		if !ok {
			break
		}
		node.SetValue(node.Value() * 10)
	}

	assertList(t, l, 10, 20, 30, 40)
}

func TestIterMutEmpty(t *testing.T) {
	it := New().IterMut()
	if _, ok := it.Next(); ok {
		t.Error("mutable cursor yielded a node from an empty list")
	}
}

func TestNodeLockViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected overlapping write access to one node to panic")
		}
	}()

	n := &Node{}
	n.lockWrite()
	n.lockWrite()
}

func TestNodeLockReadersShared(t *testing.T) {
	n := &Node{value: 1}

	// Many readers may overlap; a writer may follow once they release.
	n.lockRead()
	n.lockRead()
	n.unlockRead()
	n.unlockRead()
	n.lockWrite()
	n.unlockWrite()
}
