package channelpath

import "strings"

// Path is a slash-delimited channel path identifying a node in the channel
// tree. Examples: "sensors/temp/室内" is not typical but legal; common paths
// look like "app/users/updated" or "fs/write".
//
// Paths are case-insensitive: Normalize lower-cases the whole string and all
// comparison happens on normalized paths.
type Path string

// Separator is the character used to separate path segments.
const Separator = "/"

// Root denotes the root channel. The empty string resolves to the same node.
const Root Path = "/"

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// Normalize returns the path lower-cased. All engine operations normalize
// paths before use, making channel names case-insensitive end-to-end.
func (p Path) Normalize() Path {
	return Path(strings.ToLower(string(p)))
}

// IsRoot returns true if the path denotes the root channel.
func (p Path) IsRoot() bool {
	return len(p.Segments()) == 0
}

// Segments returns the walkable segments of the path.
//
// A single leading separator is stripped before splitting, so "/a/b" and
// "a/b" yield the same segments. An empty segment terminates the walk: every
// segment after the first empty one is discarded. This means a trailing
// separator is ignored ("a/b/" == "a/b") and, as a deliberate compatibility
// quirk, a doubled separator truncates the path ("a//b" yields only "a").
func (p Path) Segments() []string {
	s := strings.TrimPrefix(string(p), Separator)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, Separator)
	for i, seg := range parts {
		if seg == "" {
			return parts[:i]
		}
	}
	return parts
}

// SegmentCount returns the number of walkable segments.
func (p Path) SegmentCount() int {
	return len(p.Segments())
}

// Base returns the last walkable segment, or "" for the root.
func (p Path) Base() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Join joins segments into a path.
func Join(segments ...string) Path {
	return Path(strings.Join(segments, Separator))
}

// FromString creates a Path from a string. This is mainly for clarity when
// converting from string literals.
func FromString(s string) Path {
	return Path(s)
}
