// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// One Run loads the scene, builds the graph for the configured mode and
// writes the DOT text to the output writer. Rendering the text into an image
// is left to Graphviz.
package app
