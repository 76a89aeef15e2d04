package chanwire

import "github.com/chanwire/chanwire/channelpath"

// node is one channel in the tree. Nodes are created lazily by path
// resolution and persist for the engine's lifetime; there is no pruning.
type node struct {
	// children maps segment name to child node. Keys are already
	// lower-cased by path normalization.
	children map[string]*node

	// listeners currently registered on exactly this node, in
	// registration order. Ancestors and descendants keep their own.
	listeners []*listener

	// last is the most recently streamed message cached at this node, or
	// nil. Set only by Stream, cleared only by Silence; Broadcast never
	// touches it. The node is "streaming" exactly when last is non-nil.
	last *Message
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// resolve walks the tree from the root to the node the path denotes,
// creating missing nodes along the way. Traversal is total: every string
// resolves to some node per channelpath's parsing rules. The caller must
// hold the engine write lock.
func (e *Engine) resolve(path string) *node {
	n := e.root
	for _, seg := range channelpath.Path(path).Normalize().Segments() {
		child := n.children[seg]
		if child == nil {
			child = newNode()
			n.children[seg] = child
		}
		n = child
	}
	return n
}

// walk applies fn to n and every descendant. Visit order across siblings is
// unspecified. The caller must hold the engine lock for the access fn makes.
func walk(n *node, fn func(*node)) {
	fn(n)
	for _, child := range n.children {
		walk(child, fn)
	}
}

// walkPaths is walk plus the path of each visited node, used for
// introspection. Segments are joined with the path separator; the root is
// reported as "/".
func walkPaths(n *node, prefix []string, fn func(path channelpath.Path, n *node)) {
	if len(prefix) == 0 {
		fn(channelpath.Root, n)
	} else {
		fn(channelpath.Join(prefix...), n)
	}
	for seg, child := range n.children {
		next := make([]string, len(prefix)+1)
		copy(next, prefix)
		next[len(prefix)] = seg
		walkPaths(child, next, fn)
	}
}
