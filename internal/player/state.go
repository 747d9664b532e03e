package player

// State transitions:
//   - Stopped → Playing (Play)
//   - Playing → Paused  (Pause)
//   - Paused  → Playing (Resume)
//   - Playing/Paused → Stopped (Stop, or a non-looping source ending)
//
// Play from any state stops first. Toggle cycles Playing ↔ Paused and is a
// no-op when stopped.

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
