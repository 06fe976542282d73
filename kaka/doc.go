// Package kaka implements the front end of the Kaka scripting language, a
// message-passing language with Smalltalk-style sends and significant
// indentation. Source flows through three stages:
//   - Scan turns text into tokens, measuring the indentation after each
//     newline without interpreting it.
//   - Normalize rewrites those newlines into INDENT and DEDENT tokens and
//     enforces one indentation character per unit.
//   - Parse builds the statement list. Unary sends bind tightest, binary
//     sends share a single left-associative level, keyword sends bind
//     loosest.
//
// The syntax covers integers, floats, strings, lists `[a, b]`, maps
// `{k = v}`, blocks `@{|x| x foo}`, assignments and bare declarations, and
// class declarations with fields and unary, binary and keyword methods.
//
// Consumers traverse the resulting tree through Visitor and Accept. Engine
// wraps the stages with size and nesting limits, compiles batches of units
// concurrently and attaches source text to errors for rendering.
package kaka
