package availability

import (
	"testing"

	"github.com/iliyamo/villa-booking/internal/model"
)

func rng(t *testing.T, start, end string) model.DateRange {
	t.Helper()
	r, err := model.NewDateRange(model.MustParseDate(start), model.MustParseDate(end))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	return r
}

func reservation(start, end string, status model.PaymentStatus) model.Reservation {
	return model.Reservation{
		ID:            start + "/" + end,
		StartDate:     model.MustParseDate(start),
		EndDate:       model.MustParseDate(end),
		PaymentStatus: status,
	}
}

func blocage(start, end string) model.Blocage {
	return model.Blocage{ID: start, StartDate: model.MustParseDate(start), EndDate: model.MustParseDate(end)}
}

func TestOverlapsEmptyCalendarIsFree(t *testing.T) {
	if Overlaps(rng(t, "2025-06-01", "2025-06-05"), nil, nil) {
		t.Fatal("empty calendar reported an overlap")
	}
}

func TestOverlapsReservationBoundaries(t *testing.T) {
	booked := []model.Reservation{reservation("2025-06-01", "2025-06-05", model.StatusPending)}
	if Overlaps(rng(t, "2025-06-06", "2025-06-10"), booked, nil) {
		t.Fatal("adjacent range reported as overlapping")
	}
	if !Overlaps(rng(t, "2025-06-05", "2025-06-10"), booked, nil) {
		t.Fatal("shared boundary day not reported as overlapping")
	}
	if !Overlaps(rng(t, "2025-05-20", "2025-06-01"), booked, nil) {
		t.Fatal("range ending on the first booked day not reported")
	}
}

func TestOverlapsBlocage(t *testing.T) {
	blocked := []model.Blocage{blocage("2025-12-24", "2025-12-26")}
	if !Overlaps(rng(t, "2025-12-20", "2025-12-24"), nil, blocked) {
		t.Fatal("blocage ignored")
	}
	if Overlaps(rng(t, "2025-12-27", "2025-12-31"), nil, blocked) {
		t.Fatal("range after blocage reported as overlapping")
	}
}

func TestSnapshotSkipsCancelled(t *testing.T) {
	snap := NewSnapshot([]model.Reservation{
		reservation("2025-07-01", "2025-07-07", model.StatusCancelled),
		reservation("2025-07-10", "2025-07-12", model.StatusPartial),
	}, nil)
	if len(snap.Reservations) != 1 {
		t.Fatalf("active reservations = %d, want 1", len(snap.Reservations))
	}
	if snap.Blocages == nil {
		t.Fatal("blocages should be an empty slice, not nil")
	}
	if !snap.Free(rng(t, "2025-07-01", "2025-07-07")) {
		t.Fatal("cancelled reservation still blocks its dates")
	}
	if snap.Free(rng(t, "2025-07-12", "2025-07-13")) {
		t.Fatal("partial reservation does not block its dates")
	}
	if n := len(snap.BusyRanges()); n != 1 {
		t.Fatalf("busy ranges = %d", n)
	}
}
