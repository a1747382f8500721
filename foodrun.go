// Package foodrun turns recipe web pages into structured, editable recipe
// previews. It parses a page's markup through an ordered chain of extraction
// strategies (embedded structured data, heading/list heuristics, site-tuned
// rules) and produces a title, an optional serving count, and an ordered list
// of ingredient records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package foodrun
