package dom

// NodeList is the ordered child storage of an element.
type NodeList []*Node

// Contains returns the index of n in the list, or -1.
func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

// Remove drops the node at i, keeping the order of the rest. Out of range
// indexes return nil and leave the list alone.
func (h *NodeList) Remove(i int) *Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	// clear the vacated tail slot so the backing array doesn't pin the node
	(*h)[:len(*h)+1][len(*h)] = nil
	return node
}

func (h *NodeList) Append(n *Node) {
	*h = append(*h, n)
}

// Copy returns a list sharing no backing storage with h.
func (h NodeList) Copy() NodeList {
	c := make(NodeList, len(h))
	copy(c, h)
	return c
}
