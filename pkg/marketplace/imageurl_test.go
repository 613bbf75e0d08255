package marketplace

import "testing"

func TestImageResolverResolve(t *testing.T) {
	resolver := ImageResolver{Origin: "https://img.example.com"}
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blob preview", "blob:abc", ""},
		{"absolute https", "https://x/y.png", "https://x/y.png"},
		{"absolute http", "http://x/y.png", "http://x/y.png"},
		{"rooted path", "/uploads/a.png", "https://img.example.com/uploads/a.png"},
		{"bare path", "uploads/a.png", "https://img.example.com/uploads/a.png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolver.Resolve(tc.in); got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestImageResolverTrimsTrailingSlash(t *testing.T) {
	resolver := ImageResolver{Origin: "https://img.example.com/"}
	if got := resolver.Resolve("/a.png"); got != "https://img.example.com/a.png" {
		t.Fatalf("unexpected url %q", got)
	}
}
