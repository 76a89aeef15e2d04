// Package channelpath defines the Path type for slash-delimited, hierarchical
// channel names.
//
// Paths form a tree: "a/b/c" is a descendant of "a/b". Channel names are
// case-insensitive (Normalize lower-cases before any use). Parsing rules are
// total over all strings - there is no such thing as an invalid path:
//
//	""       - the root channel
//	"/"      - the root channel
//	"/a/b"   - same as "a/b" (one leading separator is stripped)
//	"a/b/"   - same as "a/b" (empty trailing segment terminates the walk)
//	"a//b"   - same as "a" (an empty segment terminates the walk; kept for
//	           compatibility with the original wire format)
package channelpath
