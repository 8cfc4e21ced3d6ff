package hopit

// ScoreTracker accumulates the height score from camera shifts.
type ScoreTracker struct {
	Shift  int // Camera shift of the last frame
	Height int // Sum of positive shifts since the last reset
	Best   int // Persisted best height, updated only at run end
}

// Apply records a frame's camera shift. Only positive shifts add height.
func (st *ScoreTracker) Apply(shift int) {
	st.Shift = shift
	if shift > 0 {
		st.Height += shift
	}
}

// Reset zeroes the run counters and keeps Best.
func (st *ScoreTracker) Reset() {
	st.Shift = 0
	st.Height = 0
}

// Beaten reports whether the current run is above the best height.
func (st *ScoreTracker) Beaten() bool {
	return st.Height > st.Best
}
