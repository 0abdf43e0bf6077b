package raster

import "tri-raster/internal/mathutil"

// PosHandle names an uploaded position buffer.
type PosHandle struct{ id uint64 }

// IndHandle names an uploaded index buffer.
type IndHandle struct{ id uint64 }

// ColHandle names an uploaded color buffer.
type ColHandle struct{ id uint64 }

// ID returns the raw counter value behind the handle.
func (h PosHandle) ID() uint64 { return h.id }
func (h IndHandle) ID() uint64 { return h.id }
func (h ColHandle) ID() uint64 { return h.id }

// store owns uploaded geometry. All three kinds draw ids from one counter,
// so no two handles of a store share an id. Ids start at 1 so a zero-value
// handle is always unknown. Buffers are never modified
// or removed once stored.
type store struct {
	nextID    uint64
	positions map[uint64][]mathutil.Vec3
	indices   map[uint64][]mathutil.IVec3
	colors    map[uint64][]mathutil.Vec3
}

func newStore() store {
	return store{
		nextID:    1,
		positions: make(map[uint64][]mathutil.Vec3),
		indices:   make(map[uint64][]mathutil.IVec3),
		colors:    make(map[uint64][]mathutil.Vec3),
	}
}

func (s *store) next() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *store) addPositions(p []mathutil.Vec3) PosHandle {
	id := s.next()
	s.positions[id] = append([]mathutil.Vec3(nil), p...)
	return PosHandle{id}
}

func (s *store) addIndices(ind []mathutil.IVec3) IndHandle {
	id := s.next()
	s.indices[id] = append([]mathutil.IVec3(nil), ind...)
	return IndHandle{id}
}

func (s *store) addColors(c []mathutil.Vec3) ColHandle {
	id := s.next()
	s.colors[id] = append([]mathutil.Vec3(nil), c...)
	return ColHandle{id}
}

func (s *store) position(h PosHandle) ([]mathutil.Vec3, error) {
	p, ok := s.positions[h.id]
	if !ok {
		return nil, &LookupError{Buffer: "position", Handle: h.id, UnknownHandle: true}
	}
	return p, nil
}

func (s *store) index(h IndHandle) ([]mathutil.IVec3, error) {
	ind, ok := s.indices[h.id]
	if !ok {
		return nil, &LookupError{Buffer: "index", Handle: h.id, UnknownHandle: true}
	}
	return ind, nil
}

func (s *store) color(h ColHandle) ([]mathutil.Vec3, error) {
	c, ok := s.colors[h.id]
	if !ok {
		return nil, &LookupError{Buffer: "color", Handle: h.id, UnknownHandle: true}
	}
	return c, nil
}

// rangeTriangles groups [start, end) into consecutive triples. A trailing
// remainder shorter than three is dropped.
func rangeTriangles(start, end int) []mathutil.IVec3 {
	var out []mathutil.IVec3
	for i := start; i+2 < end; i += 3 {
		out = append(out, mathutil.IVec3{i, i + 1, i + 2})
	}
	return out
}
