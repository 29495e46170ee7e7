// Package availability decides whether a range of days is still free.
// It works on plain slices handed over by the caller and keeps no state,
// so each call scans the full set of reservations and blocages.
package availability

import "github.com/iliyamo/villa-booking/internal/model"

// Snapshot is what the public calendar shows: every reservation that still
// holds its dates plus every manual blocage.
type Snapshot struct {
	Reservations []model.Reservation `json:"reservations"`
	Blocages     []model.Blocage     `json:"blocages"`
}

// NewSnapshot drops cancelled reservations.  Nil inputs become empty
// slices so the JSON form is always two arrays.
func NewSnapshot(reservations []model.Reservation, blocages []model.Blocage) Snapshot {
	active := make([]model.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.PaymentStatus.Active() {
			active = append(active, r)
		}
	}
	if blocages == nil {
		blocages = []model.Blocage{}
	}
	return Snapshot{Reservations: active, Blocages: blocages}
}

// Overlaps reports whether candidate shares a day with any reservation or
// blocage.  Reservations are taken as given: the caller filters out
// cancelled ones (NewSnapshot does).
func Overlaps(candidate model.DateRange, reservations []model.Reservation, blocages []model.Blocage) bool {
	for _, r := range reservations {
		if candidate.Overlaps(r.Range()) {
			return true
		}
	}
	for _, b := range blocages {
		if candidate.Overlaps(b.Range()) {
			return true
		}
	}
	return false
}

// Free reports whether candidate can be booked against s.
func (s Snapshot) Free(candidate model.DateRange) bool {
	return !Overlaps(candidate, s.Reservations, s.Blocages)
}

// BusyRanges lists every interval held in s, reservations first.
func (s Snapshot) BusyRanges() []model.DateRange {
	out := make([]model.DateRange, 0, len(s.Reservations)+len(s.Blocages))
	for _, r := range s.Reservations {
		out = append(out, r.Range())
	}
	for _, b := range s.Blocages {
		out = append(out, b.Range())
	}
	return out
}
