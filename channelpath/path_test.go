package channelpath

import "testing"

func TestPath_Normalize(t *testing.T) {
	tests := []struct {
		path     Path
		expected Path
	}{
		{Path("A/B/C"), Path("a/b/c")},
		{Path("app/Users/Updated"), Path("app/users/updated")},
		{Path("already/lower"), Path("already/lower")},
		{Path(""), Path("")},
		{Path("/"), Path("/")},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			if got := tt.path.Normalize(); got != tt.expected {
				t.Errorf("Path.Normalize() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPath_Segments(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected []string
	}{
		{"simple", Path("a/b/c"), []string{"a", "b", "c"}},
		{"leading slash", Path("/a/b"), []string{"a", "b"}},
		{"trailing slash", Path("a/b/"), []string{"a", "b"}},
		{"empty", Path(""), nil},
		{"root", Path("/"), nil},
		{"double leading slash", Path("//a"), nil},
		{"doubled separator truncates", Path("a//b"), []string{"a"}},
		{"single segment", Path("a"), []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.Segments()
			if len(got) != len(tt.expected) {
				t.Fatalf("Path.Segments() = %v, want %v", got, tt.expected)
			}
			for i, seg := range got {
				if seg != tt.expected[i] {
					t.Errorf("Path.Segments()[%d] = %v, want %v", i, seg, tt.expected[i])
				}
			}
		})
	}
}

func TestPath_IsRoot(t *testing.T) {
	tests := []struct {
		path     Path
		expected bool
	}{
		{Path(""), true},
		{Path("/"), true},
		{Path("//anything"), true},
		{Path("a"), false},
		{Path("/a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			if got := tt.path.IsRoot(); got != tt.expected {
				t.Errorf("Path.IsRoot() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPath_Base(t *testing.T) {
	tests := []struct {
		path     Path
		expected string
	}{
		{Path("a/b/c"), "c"},
		{Path("a"), "a"},
		{Path("a//b"), "a"},
		{Path("/"), ""},
		{Path(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			if got := tt.path.Base(); got != tt.expected {
				t.Errorf("Path.Base() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		segments []string
		expected Path
	}{
		{[]string{"a", "b", "c"}, Path("a/b/c")},
		{[]string{"a"}, Path("a")},
		{nil, Path("")},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			if got := Join(tt.segments...); got != tt.expected {
				t.Errorf("Join() = %v, want %v", got, tt.expected)
			}
		})
	}
}
