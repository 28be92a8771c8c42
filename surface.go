package wordcloud

import "sync"

// Surface is the drawing target of one cloud: a sized area holding the
// ordered word elements. Element coordinates are relative to its center.
type Surface struct {
	ID   string
	Size Dimensions

	elements []*Element
	nextID   uint32
}

// Elements returns the live elements in draw order. The returned slice MUST
// NOT be mutated.
func (s *Surface) Elements() []*Element {
	return s.elements
}

// NumElements returns the number of live elements.
func (s *Surface) NumElements() int {
	return len(s.elements)
}

// Resize sets the surface size.
func (s *Surface) Resize(d Dimensions) {
	s.Size = d
}

// addElement appends a new element.
func (s *Surface) addElement() *Element {
	s.nextID++
	e := newElement(s.nextID)
	s.elements = append(s.elements, e)
	return e
}

// truncate disposes every element from index n on.
func (s *Surface) truncate(n int) {
	if n >= len(s.elements) {
		return
	}
	for i := n; i < len(s.elements); i++ {
		s.elements[i].Dispose()
		s.elements[i] = nil
	}
	s.elements = s.elements[:n]
}

// clear disposes every element.
func (s *Surface) clear() {
	s.truncate(0)
}

// toLocal converts surface coordinates (origin top-left) to center-relative
// coordinates.
func (s *Surface) toLocal(x, y float64) (float64, float64) {
	return x - float64(s.Size.Width)/2, y - float64(s.Size.Height)/2
}

// HitTest returns the topmost interactable element under the surface point
// (x, y), or nil. Elements drawn later are on top.
func (s *Surface) HitTest(x, y float64) *Element {
	lx, ly := s.toLocal(x, y)
	for i := len(s.elements) - 1; i >= 0; i-- {
		e := s.elements[i]
		if !e.Visible || !e.Interactable || e.disposed {
			continue
		}
		if e.Box().Contains(lx, ly) {
			return e
		}
	}
	return nil
}

// SurfaceRegistry hands out one surface per container ID. Clouds sharing a
// registry and an ID share a surface. Safe for concurrent use.
type SurfaceRegistry struct {
	mu       sync.Mutex
	surfaces map[string]*Surface
}

// NewSurfaceRegistry creates an empty registry.
func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{surfaces: make(map[string]*Surface)}
}

// FindOrCreate returns the surface for id, creating it with size d if it does
// not exist yet. created reports which happened.
func (r *SurfaceRegistry) FindOrCreate(id string, d Dimensions) (s *Surface, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.surfaces[id]; ok {
		return s, false
	}
	s = &Surface{ID: id, Size: d}
	r.surfaces[id] = s
	return s, true
}

// Find returns the surface for id.
func (r *SurfaceRegistry) Find(id string) (*Surface, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.surfaces[id]
	return s, ok
}

// Remove disposes the surface for id and forgets it.
func (r *SurfaceRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.surfaces[id]; ok {
		s.clear()
		delete(r.surfaces, id)
	}
}

// Len returns the number of registered surfaces.
func (r *SurfaceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.surfaces)
}
