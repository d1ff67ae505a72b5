package htmldom

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a
// non-nil error, the walk stops immediately and returns that error.
//
// Walk snapshots each node's child list before descending, so the
// callback may detach or unwrap the node it is visiting.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children() {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkElements walks only element nodes, skipping text nodes.
func WalkElements(root *Node, fn WalkFunc) error {
	return Walk(root, func(n *Node) error {
		if !n.IsText() {
			return fn(n)
		}
		return nil
	})
}

// FindAll returns every node in the subtree for which pred returns true,
// in document order.
func FindAll(root *Node, pred func(*Node) bool) []*Node {
	var found []*Node
	_ = Walk(root, func(n *Node) error {
		if pred(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}
