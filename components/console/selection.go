package console

import "sync"

// Selection tracks recipient checkboxes on bulk-action screens. "Select all"
// only ever covers the currently loaded page; whole-audience sends go through
// the Audience flag instead.
type Selection struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	all   bool
	page  []string
}

// NewSelection starts with nothing selected.
func NewSelection() *Selection {
	return &Selection{ids: map[string]struct{}{}}
}

// SetPage records the ids of the currently loaded page. Selections outside
// the new page are kept; the select-all flag is recomputed against it.
func (s *Selection) SetPage(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = append([]string{}, ids...)
	s.all = s.coversPageLocked()
}

// SelectAll marks exactly the loaded page's ids as selected.
func (s *Selection) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{}, len(s.page))
	for _, id := range s.page {
		s.ids[id] = struct{}{}
	}
	s.all = true
}

// Clear unselects everything.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = map[string]struct{}{}
	s.all = false
}

// Toggle flips one id. Any individual change clears the select-all flag.
func (s *Selection) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.all = false
}

// Selected reports whether an id is currently checked.
func (s *Selection) Selected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// All reports the select-all checkbox state.
func (s *Selection) All() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.all
}

// IDs returns the selected ids in page order first, then any stragglers from
// previous pages.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	seen := make(map[string]struct{}, len(s.ids))
	for _, id := range s.page {
		if _, ok := s.ids[id]; ok {
			out = append(out, id)
			seen[id] = struct{}{}
		}
	}
	for id := range s.ids {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Count returns how many ids are selected.
func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Selection) coversPageLocked() bool {
	if len(s.page) == 0 {
		return false
	}
	for _, id := range s.page {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}
