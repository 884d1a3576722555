// Package wsv implements WSV (Whitespace-Separated Values), a
// human-editable tabular text format.
//
// A document is an ordered list of lines; a line is an ordered list of
// values, each either a string or null. Values are separated by any of
// 24 Unicode whitespace code points, double-quoted strings carry escapes
// for embedded quotes and line breaks, and a line may end in a "#"
// comment. The unquoted token "-" denotes null.
//
// # Preserving vs. non-preserving
//
// ParseDocument discards per-line whitespace layout and comments, keeping
// only values. ParseDocumentPreserving records the exact whitespace runs
// and comment text so that Document.SerializePreserving reproduces the
// original layout. Values are re-serialized in canonical form, so the
// original text comes back byte-for-byte only where its values were
// already canonical: a needlessly quoted "d" comes back as d.
//
// # Companion packages
//
// Package varint56 implements the variable-length integer codec used by
// the binary form, and package binarywsv implements that binary form
// (Binary WSV) on top of it.
package wsv
