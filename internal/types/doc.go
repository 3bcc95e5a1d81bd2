// Package types defines the abstract form of a query: a small tagged tree
// of literals, named function calls, pipes, and object/array construction.
// Both the text syntax and the structured (JSON) query form decode into
// this representation before compilation.
package types
