// Package value provides the canonical representation of JSON values used
// throughout the query engine: null, booleans, float64 numbers, strings,
// ordered arrays, and insertion-ordered objects.
//
// Values are compared structurally: arrays element-wise, objects by key set
// with order ignored, numbers by numeric value with NaN unequal to
// everything. Ordering is defined only between two numbers or two strings.
// String returns the canonical JSON serialization of any value.
package value
