package carousel

// Lock is the advisory busy flag held while a centering animation is assumed
// to be in flight.
//
// Every Engage starts a new generation. A release only takes effect for the
// current generation, so a timer armed by an earlier Engage can never clear
// the lock early: re-engaging supersedes the previous pending release.
type Lock struct {
	locked     bool
	generation uint64
}

// Engage sets the lock and returns the generation the release must carry.
func (l *Lock) Engage() uint64 {
	l.generation++
	l.locked = true
	return l.generation
}

// Release clears the lock if generation is the current one.
// Returns true if the lock was cleared.
func (l *Lock) Release(generation uint64) bool {
	if !l.locked || generation != l.generation {
		return false
	}
	l.locked = false
	return true
}

// IsLocked reports whether the lock is held.
func (l Lock) IsLocked() bool {
	return l.locked
}

// Generation returns the generation of the most recent Engage.
func (l Lock) Generation() uint64 {
	return l.generation
}
