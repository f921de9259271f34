// Package config defines the format-agnostic configuration document for the
// application, along with the Loader interface that concrete formats
// implement.
//
// A document describes three things:
//
//   - the scene: objects, bones, vertex groups, parents and constraints;
//   - category styles: the attribute dictionaries the DOT renderer appends
//     for each category tag;
//   - graph settings: rank direction, font and caption.
//
// The `config.Model` is the single source of truth for the `scene` and `app`
// packages. Concrete loaders for HCL and YAML live in separate packages and
// merge every file they find into one Model.
package config
