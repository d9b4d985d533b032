package emplace

import "testing"

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventReserved, "reserved"},
		{EventInitialized, "initialized"},
		{EventFailed, "failed"},
		{EventReleased, "released"},
		{EventType(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	obs := &recordObserver{}
	Subscribe(obs)
	Unsubscribe(obs)

	if _, err := OnHeap(ValueOf(1)); err != nil {
		t.Fatal(err)
	}
	if len(obs.types()) != 0 {
		t.Error("unsubscribed observer still received events")
	}

	// Unsubscribing an unknown observer is a no-op.
	Unsubscribe(&recordObserver{})
}
