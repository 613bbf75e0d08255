package marketplace

import "strings"

// ImageResolver turns backend image references into absolute URLs.
type ImageResolver struct {
	Origin string
}

// Resolve is a pure function over the backend's image reference conventions:
// empty values and ephemeral blob previews resolve to "", absolute URLs pass
// through unchanged, and everything else is joined onto the origin.
func (r ImageResolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "blob:") {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	origin := strings.TrimRight(r.Origin, "/")
	if strings.HasPrefix(ref, "/") {
		return origin + ref
	}
	return origin + "/" + ref
}
