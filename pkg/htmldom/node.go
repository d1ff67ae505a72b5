// Package htmldom provides the DOM tree that conversion operates on.
// It is built from a parsed golang.org/x/net/html document and owns all
// tree mutation performed during preprocessing and rendering.
package htmldom

// Attribute is a single name="value" pair on an element.
// Attribute order from the source document is preserved.
type Attribute struct {
	Name  string
	Value string
}

// Node represents a single element or text run in the document tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Tag is the lowercase element name, or "" for text nodes.
	Tag string

	// Attr holds the element's attributes in document order.
	Attr []Attribute

	// Text holds the raw content for text nodes.
	Text string

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// IsText returns true if this is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns the direct children as a slice.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AttrValue returns the value of the named attribute and whether it is present.
func (n *Node) AttrValue(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value or
// appending a new attribute while keeping document order.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attr {
		if a.Name == name {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, Attribute{Name: name, Value: value})
}

// Ancestors returns the strict ancestors of n for which pred returns true,
// ordered outermost first. A nil pred matches every ancestor.
// The walk is bounded to guard against accidental parent-pointer cycles.
func (n *Node) Ancestors(pred func(*Node) bool) []*Node {
	const maxDepth = 1 << 16

	var matched []*Node
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
		if depth > maxDepth {
			break
		}
		if pred == nil || pred(p) {
			matched = append(matched, p)
		}
	}

	// Collected inner-to-outer; reverse for outermost-first order.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

// NewElement creates a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Tag: tag}
}

// NewText creates a detached text node with the given content.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		Detach(child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// Detach removes a node (with its subtree) from its parent.
// The node itself remains usable as the root of a detached subtree.
func Detach(n *Node) {
	if n == nil || n.Parent == nil {
		return
	}

	parent := n.Parent

	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		parent.FirstChild = n.Next
	}

	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		parent.LastChild = n.Prev
	}

	n.Parent = nil
	n.Prev = nil
	n.Next = nil
}

// Unwrap replaces a node with its children, splicing them into the
// parent at the node's position. Used for stripping wrapper elements
// whose content should survive.
func Unwrap(n *Node) {
	if n == nil || n.Parent == nil {
		return
	}

	parent := n.Parent
	first := n.FirstChild
	last := n.LastChild

	if first == nil {
		Detach(n)
		return
	}

	for child := first; child != nil; child = child.Next {
		child.Parent = parent
	}

	first.Prev = n.Prev
	last.Next = n.Next

	if n.Prev != nil {
		n.Prev.Next = first
	} else {
		parent.FirstChild = first
	}

	if n.Next != nil {
		n.Next.Prev = last
	} else {
		parent.LastChild = last
	}

	n.Parent = nil
	n.Prev = nil
	n.Next = nil
	n.FirstChild = nil
	n.LastChild = nil
}
