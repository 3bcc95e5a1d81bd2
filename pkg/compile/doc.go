// Package compile lowers the abstract form of a query into an executable
// evaluator: a pure function from an input value to an output value.
//
// Compilation dispatches on the node type. Literals become constant
// evaluators, object and array construction evaluate their children
// against the same input in declared order, pipes chain sequentially, and
// function calls resolve through a string-keyed table of builders. Every
// builder compiles its argument queries once, at build time, and closes
// over the resulting evaluators, so runtime evaluation performs no table
// lookups.
//
// A compile context carries the function table in effect for one compile
// call: the core standard library merged with per-call user extensions,
// user entries shadowing core entries by name. Builders that accept
// sub-queries (map, filter, pipe, if, ...) re-enter the compiler through
// the same context, so extensions remain visible in nested compiles.
// Contexts are cheap, single-use, and not shared between goroutines;
// the evaluators they produce are immutable and safe to share.
//
// Error handling follows a small taxonomy. UnknownFunctionError and
// ArityError surface at compile time. At runtime most operations prefer
// null propagation — absent properties, type mismatches in arithmetic and
// collection functions all yield null — and TypeError is reserved for the
// few operations whose semantics cannot reasonably default, such as split
// or substring applied to a non-string.
package compile
