// Package dot renders a graphmodel.Model as Graphviz DOT text.
//
// Rendering is a pure function of the model and a Style. The output lists
// free nodes, then clusters with their member nodes, then edges, each in
// insertion order, so identical inputs always yield byte-identical text.
//
// An entity's attribute list starts with its label, when it has one, then
// appends every key/value pair configured for each of its category tags in tag
// order. Keys are not deduplicated; Graphviz keeps the last value it reads.
package dot
