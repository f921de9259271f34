package graphbuilder

import (
	"github.com/vk/riggraph/internal/classifier"
	"github.com/vk/riggraph/internal/graphmodel"
	"github.com/vk/riggraph/internal/symmetry"
)

// LegendTitle labels the legend cluster.
const LegendTitle = "Legend"

// BuildLegend returns a fixed graph explaining the node and edge styles.
func BuildLegend() *graphmodel.Model {
	m := graphmodel.New()
	cluster := m.NewID()
	m.AddCluster(cluster)
	m.SetLabel(cluster, LegendTitle)

	node := func(label string, tags ...string) graphmodel.EntityID {
		id := m.NewID()
		must(m.AddNode(id, cluster))
		m.SetLabel(id, label)
		m.SetCategories(id, tags...)
		return id
	}
	edge := func(from, to graphmodel.EntityID, label string, tags ...string) {
		id := m.NewID()
		must(m.AddEdge(id, from, to))
		if label != "" {
			m.SetLabel(id, label)
		}
		m.SetCategories(id, tags...)
	}

	parent := node("Parent")
	child := node("Child")
	edge(child, parent, "", CategoryParent)

	subject := node("Subject")
	target := node("Target")
	edge(subject, target, "Constraint", CategoryConstraint)

	deforming := node("Deforming Bone", CategoryBone, CategoryDeforming)
	root := node("Root", CategoryBone, CategoryRoot)
	edge(deforming, root, "", CategoryInvisible)

	symmetric := node("Symmetric Bone."+symmetry.MirrorGlyph, CategoryBone)
	breaking := node("Symmetry-Breaking Bone", CategoryBone, string(classifier.Antisymmetric))
	edge(symmetric, breaking, "", CategoryInvisible)

	return m
}
