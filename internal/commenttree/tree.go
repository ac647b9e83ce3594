// Package commenttree rebuilds reply hierarchies from flat comment lists.
package commenttree

import "socialfeed/internal/publication"

// Node is a comment with its direct replies in input order.
type Node struct {
	publication.Comment
	Placeholder bool    `json:"placeholder,omitempty"`
	Replies     []*Node `json:"replies"`
}

// Organize turns a flat comment sequence into a forest. Roots keep their input order.
// A reply whose parent is not in the input is dropped, never promoted to a root.
// The input is not modified.
func Organize(comments []publication.Comment) []*Node {
	byID := make(map[string]*Node, len(comments))
	nodes := make([]*Node, len(comments))
	for i, c := range comments {
		n := &Node{Comment: c, Replies: []*Node{}}
		nodes[i] = n
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = n
		}
	}

	roots := make([]*Node, 0)
	for _, n := range nodes {
		if byID[n.ID] != n {
			continue
		}
		if n.ParentCommentID == nil {
			roots = append(roots, n)
			continue
		}
		if parent, ok := byID[*n.ParentCommentID]; ok && parent != n {
			parent.Replies = append(parent.Replies, n)
		}
	}
	return roots
}

// PruneInactive removes deleted comments that no longer anchor any reply. A deleted
// comment that still has surviving replies stays as a placeholder with its text cleared.
func PruneInactive(forest []*Node) []*Node {
	out := make([]*Node, 0, len(forest))
	for _, n := range forest {
		n.Replies = PruneInactive(n.Replies)
		if n.IsActive {
			out = append(out, n)
			continue
		}
		if len(n.Replies) > 0 {
			n.Placeholder = true
			n.Text = ""
			out = append(out, n)
		}
	}
	return out
}

// Walk visits every node depth-first, parents before replies.
func Walk(forest []*Node, fn func(*Node)) {
	for _, n := range forest {
		fn(n)
		Walk(n.Replies, fn)
	}
}
