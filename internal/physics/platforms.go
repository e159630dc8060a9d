package physics

// Platforms owns the live platform set of a level. Platforms are
// addressed by stable IDs that stay valid, or resolve to nothing,
// after other platforms are removed.
type Platforms struct {
	items  []*Platform
	index  map[PlatformID]int
	nextID PlatformID
}

// NewPlatforms creates an empty collection.
func NewPlatforms() *Platforms {
	return &Platforms{index: make(map[PlatformID]int)}
}

// Add stores p, assigns it a fresh ID and returns that ID.
func (ps *Platforms) Add(p *Platform) PlatformID {
	ps.nextID++
	p.ID = ps.nextID
	ps.index[p.ID] = len(ps.items)
	ps.items = append(ps.items, p)
	return p.ID
}

// Lookup returns the platform with the given ID.
// Evicted or unknown IDs report false.
func (ps *Platforms) Lookup(id PlatformID) (*Platform, bool) {
	if id == NoPlatform {
		return nil, false
	}
	i, ok := ps.index[id]
	if !ok {
		return nil, false
	}
	return ps.items[i], true
}

// All returns the live platforms in insertion order. The slice must not be modified.
func (ps *Platforms) All() []*Platform {
	return ps.items
}

// Len returns the number of live platforms.
func (ps *Platforms) Len() int {
	return len(ps.items)
}

// RemoveIf removes every platform for which drop returns true and
// reports how many were removed.
func (ps *Platforms) RemoveIf(drop func(*Platform) bool) int {
	kept := ps.items[:0]
	removed := 0
	for _, p := range ps.items {
		if drop(p) {
			delete(ps.index, p.ID)
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(ps.items); i++ {
		ps.items[i] = nil
	}
	ps.items = kept
	if removed > 0 {
		for i, p := range ps.items {
			ps.index[p.ID] = i
		}
	}
	return removed
}

// Update advances every platform by one frame.
func (ps *Platforms) Update() {
	for _, p := range ps.items {
		p.Advance()
	}
}
