// Package graphmodel is the entity registry filled by the graph builder and
// read by the DOT renderer: clusters, free nodes, edges, labels and category
// tags, all kept in insertion order.
//
// A Model is owned by one build and is not safe for concurrent use.
package graphmodel

import (
	"fmt"
	"slices"
)

// EntityID identifies a cluster, node or edge within one Model.
type EntityID int

// Edge connects two nodes. It may cross cluster boundaries.
type Edge struct {
	ID   EntityID
	From EntityID
	To   EntityID
}

// Cluster is a group of nodes rendered as a subgraph.
type Cluster struct {
	ID    EntityID
	Nodes []EntityID
}

// Model holds the discovered graph.
type Model struct {
	next EntityID

	freeNodes []EntityID
	clusters  []EntityID
	members   map[EntityID][]EntityID
	nodeHome  map[EntityID]EntityID // node -> cluster, 0 for free nodes
	edges     []Edge
	edgeIndex map[EntityID]int

	labels     map[EntityID]string
	categories map[EntityID][]string
}

// New returns an empty model.
func New() *Model {
	return &Model{
		members:    make(map[EntityID][]EntityID),
		nodeHome:   make(map[EntityID]EntityID),
		edgeIndex:  make(map[EntityID]int),
		labels:     make(map[EntityID]string),
		categories: make(map[EntityID][]string),
	}
}

// NewID allocates a fresh entity ID. IDs start at 1.
func (m *Model) NewID() EntityID {
	m.next++
	return m.next
}

// AddCluster registers id as an empty cluster. Adding an existing cluster is
// a no-op.
func (m *Model) AddCluster(id EntityID) {
	if _, exists := m.members[id]; exists {
		return
	}
	m.clusters = append(m.clusters, id)
	m.members[id] = nil
}

// AddNode places node id in cluster, or among the free nodes when cluster is
// zero. A node already placed keeps its original placement.
func (m *Model) AddNode(id, cluster EntityID) error {
	if _, exists := m.nodeHome[id]; exists {
		return nil
	}
	if cluster == 0 {
		m.freeNodes = append(m.freeNodes, id)
	} else {
		if _, ok := m.members[cluster]; !ok {
			return fmt.Errorf("node %d: cluster %d does not exist", id, cluster)
		}
		m.members[cluster] = append(m.members[cluster], id)
	}
	m.nodeHome[id] = cluster
	return nil
}

// AddEdge registers edge id from one node to another.
func (m *Model) AddEdge(id, from, to EntityID) error {
	if _, exists := m.edgeIndex[id]; exists {
		return nil
	}
	if !m.HasNode(from) {
		return fmt.Errorf("edge %d: origin node %d does not exist", id, from)
	}
	if !m.HasNode(to) {
		return fmt.Errorf("edge %d: destination node %d does not exist", id, to)
	}
	m.edgeIndex[id] = len(m.edges)
	m.edges = append(m.edges, Edge{ID: id, From: from, To: to})
	return nil
}

// RemoveNode drops a node that no edge references, along with its label and
// categories.
func (m *Model) RemoveNode(id EntityID) error {
	cluster, exists := m.nodeHome[id]
	if !exists {
		return fmt.Errorf("node %d does not exist", id)
	}
	if m.Degree(id) > 0 {
		return fmt.Errorf("node %d is referenced by an edge", id)
	}
	if cluster == 0 {
		m.freeNodes = slices.DeleteFunc(m.freeNodes, func(n EntityID) bool { return n == id })
	} else {
		m.members[cluster] = slices.DeleteFunc(m.members[cluster], func(n EntityID) bool { return n == id })
	}
	delete(m.nodeHome, id)
	delete(m.labels, id)
	delete(m.categories, id)
	return nil
}

// HasNode reports whether id is a node of m.
func (m *Model) HasNode(id EntityID) bool {
	_, ok := m.nodeHome[id]
	return ok
}

// ClusterOf returns the cluster holding node id, or zero for a free node.
func (m *Model) ClusterOf(id EntityID) (EntityID, bool) {
	c, ok := m.nodeHome[id]
	return c, ok
}

// Degree counts the edges that start or end at node id.
func (m *Model) Degree(id EntityID) int {
	n := 0
	for _, e := range m.edges {
		if e.From == id {
			n++
		}
		if e.To == id {
			n++
		}
	}
	return n
}

// SetLabel sets the display label of an entity.
func (m *Model) SetLabel(id EntityID, label string) {
	m.labels[id] = label
}

// Label returns the display label of an entity.
func (m *Model) Label(id EntityID) (string, bool) {
	l, ok := m.labels[id]
	return l, ok
}

// SetCategories replaces the category tags of an entity. Empty tags are
// dropped.
func (m *Model) SetCategories(id EntityID, tags ...string) {
	m.categories[id] = slices.DeleteFunc(slices.Clone(tags), func(tag string) bool { return tag == "" })
}

// AppendCategory adds tag after the existing tags of an entity.
func (m *Model) AppendCategory(id EntityID, tag string) {
	m.categories[id] = append(m.categories[id], tag)
}

// Categories returns the category tags of an entity in order.
func (m *Model) Categories(id EntityID) []string {
	return slices.Clone(m.categories[id])
}

// HasCategory reports whether an entity carries tag.
func (m *Model) HasCategory(id EntityID, tag string) bool {
	return slices.Contains(m.categories[id], tag)
}

// FreeNodes returns the nodes outside any cluster in insertion order.
func (m *Model) FreeNodes() []EntityID {
	return slices.Clone(m.freeNodes)
}

// Clusters returns the clusters and their member nodes in insertion order.
func (m *Model) Clusters() []Cluster {
	out := make([]Cluster, 0, len(m.clusters))
	for _, id := range m.clusters {
		out = append(out, Cluster{ID: id, Nodes: slices.Clone(m.members[id])})
	}
	return out
}

// Edges returns the edges in insertion order.
func (m *Model) Edges() []Edge {
	return slices.Clone(m.edges)
}

// NodeCount returns the number of nodes, clustered or free.
func (m *Model) NodeCount() int {
	return len(m.nodeHome)
}

// Validate checks that every node sits in exactly one container and every
// edge joins existing nodes.
func (m *Model) Validate() error {
	seen := make(map[EntityID]bool)
	place := func(id EntityID) error {
		if seen[id] {
			return fmt.Errorf("node %d appears in more than one container", id)
		}
		seen[id] = true
		return nil
	}
	for _, id := range m.freeNodes {
		if err := place(id); err != nil {
			return err
		}
	}
	for _, c := range m.clusters {
		for _, id := range m.members[c] {
			if err := place(id); err != nil {
				return err
			}
		}
	}
	if len(seen) != len(m.nodeHome) {
		return fmt.Errorf("%d nodes registered but %d placed", len(m.nodeHome), len(seen))
	}
	for _, e := range m.edges {
		if !seen[e.From] || !seen[e.To] {
			return fmt.Errorf("edge %d references a missing node", e.ID)
		}
	}
	return nil
}
