// Package io reads and writes casting and graph-coloring instances in their
// plain-text formats, and writes solver reports.
//
// # Number extraction
//
// Both formats are streams of non-negative integers. A number is a maximal
// run of ASCII digits; every other byte, including the "-" some inputs use
// as a visual separator, is a delimiter and otherwise ignored. Line breaks
// carry no meaning. Numbers left over after the last expected field are
// ignored.
//
// # Casting format
//
//	N              role count
//	S              scene count
//	K              actor count (kept, never validated)
//	N groups       <count> <actor-id>...   potential actors of each role
//	S groups       <count> <role-id>...    roles of each scene
//
// # Graph-coloring format
//
//	n_vertices
//	n_edges
//	n_colors
//	n_edges pairs  <from> <to>
//
// All ids in both formats are 1-indexed; the in-memory instances in packages
// casting and coloring are 0-indexed. The readers convert on the way in and
// the writers on the way out.
//
// # Errors
//
// Readers return INVALID_INPUT errors from package errors. A truncated input
// names the first missing field, e.g. "expected number of edges missing" or
// "expected scene 2 role count missing". Ids of zero and role or vertex ids
// past the declared count are rejected as well.
//
// # Reports
//
// [WriteSummary] prints the human-readable solver output and [WriteJSON]
// encodes a [Report] for machine consumers.
package io
