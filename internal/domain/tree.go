package domain

import (
	"sort"

	"github.com/google/uuid"
)

// OrgNode is one company in a materialized organization tree.
type OrgNode struct {
	Company         Company
	ChildIDs        []uuid.UUID
	Depth           int
	UserCount       int
	DescendantCount int
	// Truncated is set when the node has children that were not loaded
	// because the depth limit was reached.
	Truncated bool
}

// OrgTree is a rooted subtree of the company forest. Nodes are keyed by
// company id; children are referenced by id so the structure stays flat.
type OrgTree struct {
	RootID uuid.UUID
	Nodes  map[uuid.UUID]*OrgNode
}

// NewOrgTree creates a tree holding only root at depth zero.
func NewOrgTree(root Company) *OrgTree {
	return &OrgTree{
		RootID: root.ID,
		Nodes:  map[uuid.UUID]*OrgNode{root.ID: {Company: root}},
	}
}

// Root returns the root node.
func (t *OrgTree) Root() *OrgNode {
	return t.Nodes[t.RootID]
}

// Node returns the node for id, or nil.
func (t *OrgTree) Node(id uuid.UUID) *OrgNode {
	return t.Nodes[id]
}

// Len returns the number of companies in the tree.
func (t *OrgTree) Len() int {
	return len(t.Nodes)
}

// Attach adds child under the already-present parent node. It returns false
// when the parent is unknown or the child is already in the tree.
func (t *OrgTree) Attach(parentID uuid.UUID, child Company) bool {
	parent, ok := t.Nodes[parentID]
	if !ok {
		return false
	}
	if _, dup := t.Nodes[child.ID]; dup {
		return false
	}
	t.Nodes[child.ID] = &OrgNode{Company: child, Depth: parent.Depth + 1}
	parent.ChildIDs = append(parent.ChildIDs, child.ID)
	return true
}

// Children returns the child nodes of id ordered by name, then id.
func (t *OrgTree) Children(id uuid.UUID) []*OrgNode {
	n, ok := t.Nodes[id]
	if !ok {
		return nil
	}
	out := make([]*OrgNode, 0, len(n.ChildIDs))
	for _, cid := range n.ChildIDs {
		if c, ok := t.Nodes[cid]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Company.Name != out[j].Company.Name {
			return out[i].Company.Name < out[j].Company.Name
		}
		return out[i].Company.ID.String() < out[j].Company.ID.String()
	})
	return out
}

// IDs returns every company id in the tree.
func (t *OrgTree) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Nodes))
	for id := range t.Nodes {
		ids = append(ids, id)
	}
	return ids
}

// ComputeDescendantCounts fills DescendantCount for every node.
func (t *OrgTree) ComputeDescendantCounts() {
	var walk func(id uuid.UUID) int
	walk = func(id uuid.UUID) int {
		n := t.Nodes[id]
		total := 0
		for _, cid := range n.ChildIDs {
			if _, ok := t.Nodes[cid]; ok {
				total += 1 + walk(cid)
			}
		}
		n.DescendantCount = total
		return total
	}
	if _, ok := t.Nodes[t.RootID]; ok {
		walk(t.RootID)
	}
}
