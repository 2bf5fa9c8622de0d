package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RootNodeID is the conventional id of the component tree root
const RootNodeID = "ROOT"

// ComponentNode is one node of a serialized page composition tree.
// Parent is empty only for the root; Nodes lists child ids in render order;
// IsCanvas marks nodes that may accept children.
type ComponentNode struct {
	Type     string         `json:"type"`
	Props    map[string]any `json:"props,omitempty"`
	Parent   string         `json:"parent,omitempty"`
	Nodes    []string       `json:"nodes,omitempty"`
	IsCanvas bool           `json:"isCanvas,omitempty"`
}

// ComponentTree maps node ids to node records, the serialized form produced
// by the page editor. The core only checks structural consistency; rendering
// semantics live outside this service.
type ComponentTree map[string]ComponentNode

// Validate checks structural consistency of the tree: a single parentless
// root exists, every parent/child reference resolves, and child links agree
// with the parent pointers.
func (t ComponentTree) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("component tree is empty")
	}

	roots := 0
	for id, node := range t {
		if node.Parent == "" {
			roots++
		} else if _, ok := t[node.Parent]; !ok {
			return fmt.Errorf("node %q references missing parent %q", id, node.Parent)
		}
		if len(node.Nodes) > 0 && !node.IsCanvas {
			return fmt.Errorf("node %q has children but is not a canvas", id)
		}
		for _, childID := range node.Nodes {
			child, ok := t[childID]
			if !ok {
				return fmt.Errorf("node %q references missing child %q", id, childID)
			}
			if child.Parent != id {
				return fmt.Errorf("child %q of node %q points back to %q", childID, id, child.Parent)
			}
		}
	}
	if roots != 1 {
		return fmt.Errorf("component tree must have exactly one root, found %d", roots)
	}
	return nil
}

// Page is a stored page record: a component tree plus optional page-level
// theme overrides, keyed by tenant and slug.
type Page struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title,omitempty"`
	Tree      ComponentTree   `json:"tree"`
	Overrides *ThemeOverrides `json:"overrides,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewPage creates a page record with a fresh id and timestamps
func NewPage(tenantID, slug string, tree ComponentTree) *Page {
	now := time.Now()
	return &Page{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Slug:      slug,
		Tree:      tree,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
