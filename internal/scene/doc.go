// Package scene holds the identity-linked structure graph that the graph
// builder walks: objects, their bones and vertex groups, parent links and
// constraint lists.
//
// Every entity is a pointer and pointer identity is the entity identity.
// Two bones named "Arm.L" in different armatures are different entities, and
// the builder never keys anything by name.
//
// A Scene is normally produced by FromModel, which resolves the name
// references of a loaded configuration document into pointers.
package scene
