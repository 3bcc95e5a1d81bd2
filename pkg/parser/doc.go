// Package parser converts the text form of a query into its abstract form
// and back.
//
// The parser is a single-pass recursive descent over the raw source, with
// no separate lexer: each precedence tier consumes its operators directly
// from an extensible operator table, using longest-match so that multi-
// character symbols and word operators ("and", "not in") resolve
// unambiguously. Precedence runs from pipe (loosest) through or, and,
// comparison, additive, multiplicative, to power (tightest,
// right-associative), with unary minus and "not" binding tighter still.
//
// Primaries cover property chains (.a.b."c", a bare identifier, or a lone
// '.' for the identity query), string literals with the JSON escapes,
// number literals, /pattern/flags regex literals, the keywords true, false
// and null, parenthesized queries, object and array literals, and function
// calls. Errors carry the byte offset where parsing stopped and what was
// expected; there is no recovery.
//
// Stringify is the inverse: canonical text with minimal whitespace and
// parentheses only where precedence requires them, such that the output
// parses back to the same abstract form.
package parser
