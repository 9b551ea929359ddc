package dom

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return fmt.Sprintf("NodeType(%d)", uint16(t))
	}
}

type element struct {
	tagName    string
	childNodes NodeList
}

// A text node has no child list at all, so it can never gain children.
type text struct {
	data string
}

// Node is a single element or text node. Exactly one of the embedded
// *element and *text is non-nil, matching NodeType.
//
// A node with no parent is a root. Nodes only become non-roots through
// AddChild on another node, and only go back to being roots through
// RemoveChild or Remove.
type Node struct {
	nodeType   NodeType
	id         uuid.UUID
	parentNode *Node

	*element
	*text
}

// NewElement returns a standalone element with no children.
func NewElement(tag string) (*Node, error) {
	if tag == "" {
		return nil, invalidArgument("element tag must not be empty")
	}
	return &Node{
		nodeType: ElementNode,
		id:       uuid.New(),
		element:  &element{tagName: tag},
	}, nil
}

// MustElement is like NewElement but panics on an empty tag.
func MustElement(tag string) *Node {
	n, err := NewElement(tag)
	if err != nil {
		panic(err)
	}
	return n
}

// NewText returns a standalone text node. The empty string is a valid
// payload.
func NewText(data string) *Node {
	return &Node{
		nodeType: TextNode,
		id:       uuid.New(),
		text:     &text{data: data},
	}
}

func (n *Node) NodeType() NodeType { return n.nodeType }
func (n *Node) ID() uuid.UUID      { return n.id }
func (n *Node) Parent() *Node      { return n.parentNode }
func (n *Node) IsRoot() bool       { return n.parentNode == nil }

// Tag returns the tag name of an element, or "" for a text node.
func (n *Node) Tag() string {
	if n.element == nil {
		return ""
	}
	return n.tagName
}

// Data returns the payload of a text node, or "" for an element.
func (n *Node) Data() string {
	if n.text == nil {
		return ""
	}
	return n.data
}

// Children returns a copy of the child list; changing it does not touch
// the tree.
func (n *Node) Children() NodeList {
	if n.element == nil {
		return NodeList{}
	}
	return n.childNodes.Copy()
}

func (n *Node) ChildCount() int {
	if n.element == nil {
		return 0
	}
	return len(n.childNodes)
}

func (n *Node) HasChildNodes() bool {
	return n.ChildCount() > 0
}

func (n *Node) FirstChild() *Node {
	if n.ChildCount() == 0 {
		return nil
	}
	return n.childNodes[0]
}

func (n *Node) LastChild() *Node {
	if n.ChildCount() == 0 {
		return nil
	}
	return n.childNodes[len(n.childNodes)-1]
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	if n.element == nil {
		return -1
	}
	return n.childNodes.Contains(child)
}

// Root follows parent references up to the root of n's tree.
func (n *Node) Root() *Node {
	root := n
	for root.parentNode != nil {
		root = root.parentNode
	}
	return root
}

// IsAncestorOf reports whether n is reachable from other by following
// parent references. A node is not its own ancestor.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for p := other.parentNode; p != nil; p = p.parentNode {
		if p == n {
			return true
		}
	}
	return false
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return other == n || n.IsAncestorOf(other)
}

// AddChild appends child to the end of n's children. child must be a root,
// and must not be n or one of n's ancestors. Nothing changes when an error
// is returned.
func (n *Node) AddChild(child *Node) error {
	if err := n.validateAddChild(child); err != nil {
		logRejected("AddChild", err)
		return err
	}

	n.childNodes.Append(child)
	child.parentNode = n

	logMutation("AddChild", n, child)
	return nil
}

func (n *Node) validateAddChild(child *Node) error {
	if child == nil {
		return invalidArgument("child must not be nil")
	}
	if n.element == nil {
		return invalidOperation("text nodes cannot have children")
	}
	if child.parentNode != nil {
		return invalidOperation("%s is already attached to %s", child.describe(), child.parentNode.describe())
	}
	// child is a root here, so it contains n exactly when n is child itself
	// or sits somewhere below it.
	if child.Contains(n) {
		return invalidOperation("adding %s under %s would create a cycle", child.describe(), n.describe())
	}
	return nil
}

// RemoveChild detaches child from n, keeping the order of the remaining
// children. child becomes a root.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil {
		err := invalidArgument("child must not be nil")
		logRejected("RemoveChild", err)
		return err
	}
	i := n.IndexOf(child)
	if i < 0 {
		err := invalidOperation("%s is not a child of %s", child.describe(), n.describe())
		logRejected("RemoveChild", err)
		return err
	}

	n.childNodes.Remove(i)
	child.parentNode = nil

	logMutation("RemoveChild", n, child)
	return nil
}

// Remove detaches n from its parent.
func (n *Node) Remove() error {
	if n.parentNode == nil {
		err := invalidOperation("%s is already a root", n.describe())
		logRejected("Remove", err)
		return err
	}
	return n.parentNode.RemoveChild(n)
}

// Clone returns a detached copy of n with a fresh identity. A deep clone
// copies the whole subtree; a shallow clone of an element has no children.
func (n *Node) Clone(deep bool) *Node {
	if n.text != nil {
		return NewText(n.data)
	}
	c := MustElement(n.tagName)
	if deep {
		c.childNodes = make(NodeList, 0, len(n.childNodes))
		for _, child := range n.childNodes {
			cc := child.Clone(true)
			cc.parentNode = c
			c.childNodes.Append(cc)
		}
	}
	return c
}

func (n *Node) serialize(b *strings.Builder) {
	if n.text != nil {
		b.WriteString(n.data)
		return
	}
	b.WriteString("<" + n.tagName + ">")
	for _, child := range n.childNodes {
		child.serialize(b)
	}
	b.WriteString("</" + n.tagName + ">")
}

// String serializes the subtree rooted at n. Text payloads are written
// verbatim, without escaping.
func (n *Node) String() string {
	var b strings.Builder
	n.serialize(&b)
	return b.String()
}

func (n *Node) describe() string {
	if n.element != nil {
		return fmt.Sprintf("<%s>#%s", n.tagName, n.id)
	}
	return fmt.Sprintf("text#%s", n.id)
}
