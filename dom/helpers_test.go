package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type nodeState struct {
	Parent   uuid.UUID
	Children []uuid.UUID
}

// snapshot records the linkage of every node in nodes by ID, so two
// snapshots can be diffed without walking pointer cycles.
func snapshot(nodes ...*Node) map[uuid.UUID]nodeState {
	s := make(map[uuid.UUID]nodeState, len(nodes))
	for _, n := range nodes {
		st := nodeState{}
		if n.parentNode != nil {
			st.Parent = n.parentNode.id
		}
		for _, c := range n.Children() {
			st.Children = append(st.Children, c.id)
		}
		s[n.id] = st
	}
	return s
}

func assertUnchanged(t *testing.T, before map[uuid.UUID]nodeState, nodes ...*Node) {
	t.Helper()
	if diff := cmp.Diff(before, snapshot(nodes...)); diff != "" {
		t.Errorf("tree changed after a rejected call (-before +after):\n%s", diff)
	}
}

// checkInvariants verifies kind exclusivity, back-references, single
// containment, acyclicity and that every node belongs to exactly one root.
func checkInvariants(t *testing.T, nodes ...*Node) {
	t.Helper()
	for _, n := range nodes {
		if (n.element == nil) == (n.text == nil) {
			t.Fatalf("%s: exactly one of element and text must be set", n.describe())
		}
		if n.text != nil && (n.nodeType != TextNode || n.ChildCount() != 0) {
			t.Fatalf("%s: text node with children or wrong type", n.describe())
		}
		if n.element != nil && n.nodeType != ElementNode {
			t.Fatalf("%s: element with wrong type %s", n.describe(), n.nodeType)
		}

		seen := map[*Node]bool{}
		for _, c := range n.Children() {
			if c.parentNode != n {
				t.Fatalf("%s: child %s points at %v", n.describe(), c.describe(), c.parentNode)
			}
			if seen[c] {
				t.Fatalf("%s: child %s listed twice", n.describe(), c.describe())
			}
			seen[c] = true
		}

		if p := n.parentNode; p != nil && p.IndexOf(n) < 0 {
			t.Fatalf("%s: missing from parent %s", n.describe(), p.describe())
		}

		steps := 0
		for p := n.parentNode; p != nil; p = p.parentNode {
			if p == n {
				t.Fatalf("%s: is its own ancestor", n.describe())
			}
			steps++
			if steps > len(nodes) {
				t.Fatalf("%s: parent chain longer than the node pool", n.describe())
			}
		}
	}

	reached := map[*Node]int{}
	var walk func(*Node)
	walk = func(n *Node) {
		reached[n]++
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, n := range nodes {
		if n.IsRoot() {
			walk(n)
		}
	}
	for _, n := range nodes {
		if reached[n] != 1 {
			t.Fatalf("%s: reachable from roots %d times", n.describe(), reached[n])
		}
	}
}
