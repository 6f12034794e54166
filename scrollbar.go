package datalist

// ScrollBar models one scroll axis in list units.
//
// Max follows the stock scrollbar convention: the largest value a user can
// reach is Max - LargeChange + 1, which SetRange arranges to equal
// content - viewport. Limit reports that bound directly, since the formula
// cannot express it when LargeChange is 0 and content fits.
type ScrollBar struct {
	Value       int
	Max         int
	LargeChange int
	SmallChange int
	Page        int // viewport extent from the last SetRange
	Visible     bool

	limit int
}

// SetRange recomputes Max and LargeChange for the given content and
// viewport extents, then re-clamps Value. LargeChange is a tenth of the
// viewport. Returns whether Value moved.
func (s *ScrollBar) SetRange(content, viewport int) bool {
	s.Page = max(0, viewport)
	s.LargeChange = max(0, viewport/10)
	s.Max = max(0, content-viewport+s.LargeChange-1)
	s.limit = max(0, content-viewport)
	return s.SetValue(s.Value)
}

// Limit is the largest reachable Value.
func (s *ScrollBar) Limit() int {
	return s.limit
}

// SetValue clamps v into [0, Limit] and stores it. Returns whether Value
// changed.
func (s *ScrollBar) SetValue(v int) bool {
	v = clampi(v, 0, s.Limit())
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Thumb returns the offset and length of the thumb inside a track of the
// given length.
func (s *ScrollBar) Thumb(track int) (offset, length int) {
	lim := s.Limit()
	if track <= 0 || lim == 0 || s.Page <= 0 {
		return 0, track
	}
	length = max(track*s.Page/(lim+s.Page), min(track, 8))
	offset = (track - length) * s.Value / lim
	return offset, length
}
