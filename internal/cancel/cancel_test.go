package cancel

import "testing"

func TestRequested_DefaultsFalse(t *testing.T) {
	if Requested() {
		t.Fatal("expected cancellation flag to default to false")
	}
}
