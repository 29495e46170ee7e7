package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHandleMessageAppendsLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := &BookingLogConsumer{Dir: dir, Logger: zap.NewNop()}

	for _, id := range []string{"r-1", "r-2"} {
		body, err := json.Marshal(ReservationCreatedEvent{
			ReservationID: id,
			Formula:       "weekend",
			StartDate:     "2025-06-06",
			EndDate:       "2025-06-08",
			CustomerName:  "Ana",
			PartySize:     10,
			TotalAmount:   800,
			PaymentPlan:   "1x",
			CreatedAt:     "2025-05-01T10:00:00Z",
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := c.HandleMessage(body); err != nil {
			t.Fatalf("handle %s: %v", id, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[1], "reservation_id=r-2") || !strings.Contains(lines[1], "dates=2025-06-06..2025-06-08") {
		t.Fatalf("unexpected line %q", lines[1])
	}
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	c := &BookingLogConsumer{Dir: t.TempDir(), Logger: zap.NewNop()}
	if err := c.HandleMessage([]byte("{not json")); err == nil {
		t.Fatal("invalid json accepted")
	}
	if err := c.HandleMessage([]byte(`{"formula":"weekend"}`)); err == nil {
		t.Fatal("event without id accepted")
	}
}
