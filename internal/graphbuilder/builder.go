package graphbuilder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/riggraph/internal/classifier"
	"github.com/vk/riggraph/internal/ctxlog"
	"github.com/vk/riggraph/internal/graphmodel"
	"github.com/vk/riggraph/internal/scene"
)

// Category tags assigned by the builder.
const (
	CategoryBone         = "bone"
	CategoryDeforming    = "deforming"
	CategoryRoot         = "root"
	CategoryHead         = "head"
	CategoryArmatureHead = "armature_head"
	CategoryMeshHead     = "mesh_head"
	CategoryFree         = "free"
	CategoryVertexGroup  = "vertex_group"
	CategoryConstraint   = "constraint"
	CategoryParent       = "parent"
	CategoryInvisible    = "invisible"
)

// HeadLabel is the label of every head node.
const HeadLabel = "•"

// ExcludeFunc reports whether a bone of owner is left off the graph.
type ExcludeFunc func(bone *scene.Bone, owner *scene.Object) bool

// builder is the state of one Build call.
type builder struct {
	logger  *slog.Logger
	model   *graphmodel.Model
	exclude ExcludeFunc

	ids      map[any]graphmodel.EntityID
	clusters map[*scene.Object]graphmodel.EntityID
	// heads and discovered keep first-seen order for the later passes.
	heads      []*scene.Object
	discovered []any
}

// Build returns the graph reachable from roots. A nil exclude keeps every
// bone.
func Build(ctx context.Context, roots []*scene.Object, exclude ExcludeFunc) *graphmodel.Model {
	if exclude == nil {
		exclude = func(*scene.Bone, *scene.Object) bool { return false }
	}
	b := &builder{
		logger:   ctxlog.FromContext(ctx),
		model:    graphmodel.New(),
		exclude:  exclude,
		ids:      make(map[any]graphmodel.EntityID),
		clusters: make(map[*scene.Object]graphmodel.EntityID),
	}
	b.logger.Debug("Graph build started.", "roots", len(roots))

	for _, root := range roots {
		b.declareRoot(root)
	}
	b.logger.Debug("Discovery pass complete.", "nodes", b.model.NodeCount(), "edges", len(b.model.Edges()))

	b.declareParentEdges()
	b.tagRoots()
	b.pruneHeads()

	b.logger.Debug("Graph build finished.",
		"clusters", len(b.model.Clusters()),
		"free_nodes", len(b.model.FreeNodes()),
		"nodes", b.model.NodeCount(),
		"edges", len(b.model.Edges()),
	)
	return b.model
}

// entityID returns the memoized ID for key, allocating one on first use.
func (b *builder) entityID(key any) (graphmodel.EntityID, bool) {
	if id, ok := b.ids[key]; ok {
		return id, false
	}
	id := b.model.NewID()
	b.ids[key] = id
	return id, true
}

// addNode places a node and records its backing entity the first time.
func (b *builder) addNode(key any, cluster graphmodel.EntityID) graphmodel.EntityID {
	id, created := b.entityID(key)
	if !b.model.HasNode(id) {
		must(b.model.AddNode(id, cluster))
		if created {
			b.discovered = append(b.discovered, key)
		}
	}
	return id
}

func (b *builder) declareRoot(obj *scene.Object) {
	b.logger.Debug("Declaring root.", "object", obj.Name, "kind", obj.Kind)
	origin := b.declareObject(obj)
	b.declareConstraintEdges(origin, obj.Constraints, nil)

	if obj.Kind != scene.KindArmature {
		return
	}
	for _, bone := range obj.Bones() {
		id, ok := b.declareBone(bone, obj, true)
		if !ok {
			continue
		}
		b.declareConstraintEdges(id, bone.Constraints, obj)
	}
}

// declareObject declares the node standing for obj itself: a head node inside
// its cluster for armatures and meshes, a free node otherwise.
func (b *builder) declareObject(obj *scene.Object) graphmodel.EntityID {
	switch obj.Kind {
	case scene.KindArmature:
		return b.declareHead(obj, CategoryArmatureHead)
	case scene.KindMesh:
		return b.declareHead(obj, CategoryMeshHead)
	default:
		id := b.addNode(obj, 0)
		b.model.SetLabel(id, obj.Name)
		b.model.SetCategories(id, CategoryFree)
		return id
	}
}

func (b *builder) declareCluster(obj *scene.Object) graphmodel.EntityID {
	if id, ok := b.clusters[obj]; ok {
		return id
	}
	id := b.model.NewID()
	b.clusters[obj] = id
	b.model.AddCluster(id)
	b.model.SetLabel(id, obj.Name)
	return id
}

func (b *builder) declareHead(obj *scene.Object, kindTag string) graphmodel.EntityID {
	cluster := b.declareCluster(obj)
	if _, seen := b.ids[obj]; !seen {
		b.heads = append(b.heads, obj)
	}
	id := b.addNode(obj, cluster)
	b.model.SetLabel(id, HeadLabel)
	b.model.SetCategories(id, CategoryHead, kindTag)
	return id
}

// declareBone declares a bone node without its constraints. It reports false
// when the bone is excluded, or when skipRightMirror is set and the bone is
// the right half of a symmetric pair.
func (b *builder) declareBone(bone *scene.Bone, owner *scene.Object, skipRightMirror bool) (graphmodel.EntityID, bool) {
	if b.exclude(bone, owner) {
		return 0, false
	}
	res := classifier.Classify(bone, owner)
	if skipRightMirror && res.Class == classifier.RightSymmetric {
		return 0, false
	}

	id := b.addNode(bone, b.declareCluster(owner))
	label := bone.Name
	if res.Class == classifier.LeftSymmetric {
		label = res.Bilateral
	}
	deforming := ""
	if bone.Deform {
		deforming = CategoryDeforming
	}
	b.model.SetLabel(id, label)
	b.model.SetCategories(id, CategoryBone, deforming, string(res.Class))
	return id, true
}

// declareConstraintEdges adds one labelled edge per constraint. home is the
// armature owning the constrained bone, or nil for object constraints.
func (b *builder) declareConstraintEdges(origin graphmodel.EntityID, constraints []*scene.Constraint, home *scene.Object) {
	for _, c := range constraints {
		target := c.TargetObject()
		if target == nil {
			b.logger.Debug("Skipping constraint without target.", "constraint", c.Name)
			continue
		}
		dst, ok := b.declareDestination(target, c.Subtarget(), home)
		if !ok {
			continue
		}
		id, _ := b.entityID(c)
		must(b.model.AddEdge(id, origin, dst))
		b.model.SetLabel(id, c.Name)
		b.model.SetCategories(id, CategoryConstraint)
	}
}

// declareDestination declares the node a constraint points at without
// expanding the target's own constraints or bones. A bone subtarget declares
// only the bone, so its armature gets neither a head nor, when the bone is
// excluded, a cluster.
func (b *builder) declareDestination(obj *scene.Object, subpart string, home *scene.Object) (graphmodel.EntityID, bool) {
	if obj.Kind == scene.KindArmature && subpart != "" {
		bone, ok := obj.Bone(subpart)
		if !ok {
			b.logger.Debug("Constraint subtarget not found.", "object", obj.Name, "bone", subpart)
			return 0, false
		}
		return b.declareBone(bone, obj, home != nil && obj == home)
	}

	head := b.declareObject(obj)
	if subpart == "" {
		return head, true
	}

	switch obj.Kind {
	case scene.KindMesh:
		group, ok := obj.VertexGroup(subpart)
		if !ok {
			b.logger.Debug("Constraint subtarget not found.", "object", obj.Name, "vertex_group", subpart)
			return 0, false
		}
		id := b.addNode(group, b.declareCluster(obj))
		b.model.SetLabel(id, group.Name)
		b.model.SetCategories(id, CategoryVertexGroup)
		return id, true
	default:
		return head, true
	}
}

func (b *builder) nodeOf(key any) (graphmodel.EntityID, bool) {
	id, ok := b.ids[key]
	if !ok || !b.model.HasNode(id) {
		return 0, false
	}
	return id, true
}

func (b *builder) declareParentEdges() {
	added := 0
	for _, key := range b.discovered {
		var origin, parent graphmodel.EntityID
		var ok bool
		switch e := key.(type) {
		case *scene.Bone:
			if e.Parent == nil {
				continue
			}
			origin, _ = b.nodeOf(e)
			parent, ok = b.nodeOf(e.Parent)
		case *scene.Object:
			if e.Parent == nil {
				continue
			}
			origin, _ = b.nodeOf(e)
			parent, ok = b.objectParentNode(e)
		default:
			continue
		}
		if !ok {
			continue
		}
		id := b.model.NewID()
		must(b.model.AddEdge(id, origin, parent))
		b.model.SetCategories(id, CategoryParent)
		added++
	}
	b.logger.Debug("Parent pass complete.", "edges", added)
}

// objectParentNode resolves the node an object hangs from: the parent bone
// when it is on the graph, else the parent object.
func (b *builder) objectParentNode(obj *scene.Object) (graphmodel.EntityID, bool) {
	if obj.Parent.Kind == scene.KindArmature && obj.ParentBone != "" {
		if bone, ok := obj.Parent.Bone(obj.ParentBone); ok {
			if id, ok := b.nodeOf(bone); ok {
				return id, true
			}
		}
	}
	return b.nodeOf(obj.Parent)
}

func (b *builder) tagRoots() {
	for _, key := range b.discovered {
		bone, ok := key.(*scene.Bone)
		if !ok || bone.Parent != nil {
			continue
		}
		if id, ok := b.nodeOf(bone); ok {
			b.model.AppendCategory(id, CategoryRoot)
		}
	}
}

func (b *builder) pruneHeads() {
	for _, obj := range b.heads {
		id, ok := b.nodeOf(obj)
		if !ok || !b.model.HasCategory(id, CategoryHead) || b.model.Degree(id) > 0 {
			continue
		}
		cluster, _ := b.model.ClusterOf(id)
		if len(b.clusterNodes(cluster)) <= 1 {
			continue
		}
		must(b.model.RemoveNode(id))
		delete(b.ids, obj)
		b.logger.Debug("Pruned unused head node.", "object", obj.Name)
	}
}

func (b *builder) clusterNodes(cluster graphmodel.EntityID) []graphmodel.EntityID {
	for _, c := range b.model.Clusters() {
		if c.ID == cluster {
			return c.Nodes
		}
	}
	return nil
}

// must panics on model errors, which only a builder bug can cause.
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("graphbuilder: %w", err))
	}
}
