package clock

// Stamp is an optional timestamp. The zero value is unset.
type Stamp struct {
	at  float64
	set bool
}

// At returns a stamp set to t.
func At(t float64) Stamp {
	return Stamp{at: t, set: true}
}

// Mark sets the stamp to now.
func (s *Stamp) Mark(now float64) {
	s.at = now
	s.set = true
}

// Reset clears the stamp.
func (s *Stamp) Reset() {
	*s = Stamp{}
}

func (s Stamp) IsSet() bool   { return s.set }
func (s Stamp) Time() float64 { return s.at }

// Since returns now minus the stamp, or 0 when unset.
func (s Stamp) Since(now float64) float64 {
	if !s.set {
		return 0
	}
	return now - s.at
}

// Expired reports whether the stamp is unset or at least threshold old.
func (s Stamp) Expired(now, threshold float64) bool {
	return !s.set || now-s.at >= threshold
}
