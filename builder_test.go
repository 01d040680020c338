// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import "testing"

func TestBuildIndicesFollowInsertionOrder(t *testing.T) {
	g, err := Build([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount = %d, want 3", g.NodeCount())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := g.KeyOf(NI(i)); got != want {
			t.Errorf("KeyOf(%d) = %q, want %q", i, got, want)
		}
	}
	if idx, ok := g.IndexOf("b"); !ok || idx != 1 {
		t.Errorf("IndexOf(b) = %d, %v, want 1, true", idx, ok)
	}
}

func TestBuildDuplicateKey(t *testing.T) {
	_, err := Build([]int{1, 2, 1}, nil)
	dup, ok := err.(*DuplicateKey[int])
	if !ok {
		t.Fatalf("Build error = %v (%T), want *DuplicateKey[int]", err, err)
	}
	if dup.Key != 1 {
		t.Errorf("DuplicateKey.Key = %d, want 1", dup.Key)
	}
}

func TestBuildUnknownKey(t *testing.T) {
	_, err := Build([]int{1, 2}, [][2]int{{1, 3}})
	unk, ok := err.(*UnknownKey[int])
	if !ok {
		t.Fatalf("Build error = %v (%T), want *UnknownKey[int]", err, err)
	}
	if unk.Key != 3 {
		t.Errorf("UnknownKey.Key = %d, want 3", unk.Key)
	}
}

func TestBuildCoalescesParallelEdges(t *testing.T) {
	g, err := Build([]int{0, 1}, [][2]int{{0, 1}, {0, 1}, {0, 1}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.Successors(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("Successors(0) = %v, want [1]", got)
	}
}
