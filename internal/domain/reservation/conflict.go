package reservation

// FindConflict returns the first existing reservation that blocks candidate, or nil.
func FindConflict(existing []*Reservation, candidate *Reservation) *Reservation {
	for _, r := range existing {
		if r.ConflictsWith(candidate) {
			return r
		}
	}
	return nil
}

// Overlapping filters the active reservations whose interval overlaps iv.
func Overlapping(existing []*Reservation, iv Interval) []*Reservation {
	var out []*Reservation
	for _, r := range existing {
		if r.IsActive() && r.interval.Overlaps(iv) {
			out = append(out, r)
		}
	}
	return out
}
