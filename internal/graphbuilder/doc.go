// Package graphbuilder discovers the entities reachable from a set of root
// objects and records them in a graphmodel.Model.
//
// # Passes
//
// Build runs four passes over one private registry:
//
//  1. Discovery. Each root gets its cluster and head node. Armature roots
//     declare every bone the exclusion predicate keeps, except right-side
//     bones with a genuine left mirror. Constraints on the root and on each
//     declared bone resolve into destination nodes, which are declared but
//     never expanded further.
//  2. Parent edges. Every discovered object or bone gets an unlabelled edge
//     to its parent, but only if the parent already has a node.
//  3. Root tags. Bones without a parent gain the "root" category.
//  4. Pruning. A head node with no edges is removed when its cluster holds
//     other nodes.
//
// # Identity
//
// Entity IDs are memoized by pointer identity, never by name. Declaring an
// entity twice returns the same ID, so re-entering a structure while
// resolving a constraint is a no-op.
package graphbuilder
