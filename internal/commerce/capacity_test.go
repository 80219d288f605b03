package commerce

import "testing"

func TestCanReserve(t *testing.T) {
	tests := []struct {
		remaining int
		want      bool
	}{
		{0, false},
		{1, true},
		{50, true},
	}
	for _, tt := range tests {
		if got := CanReserve(tt.remaining); got != tt.want {
			t.Errorf("CanReserve(%d) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestReserve(t *testing.T) {
	for remaining := 1; remaining <= 100; remaining++ {
		if got := Reserve(remaining); got != remaining-1 {
			t.Errorf("Reserve(%d) = %d, want %d", remaining, got, remaining-1)
		}
	}
}

func TestRelease(t *testing.T) {
	// Sweep the whole small domain: result stays within [0, capacity],
	// increments below capacity, saturates at it.
	for capacity := 0; capacity <= 20; capacity++ {
		for remaining := 0; remaining <= 25; remaining++ {
			got := Release(remaining, capacity)
			if got < 0 || got > capacity {
				t.Fatalf("Release(%d, %d) = %d, outside [0, %d]", remaining, capacity, got, capacity)
			}
			if remaining < capacity && got != remaining+1 {
				t.Errorf("Release(%d, %d) = %d, want %d", remaining, capacity, got, remaining+1)
			}
			if remaining >= capacity && got != capacity {
				t.Errorf("Release(%d, %d) = %d, want %d (saturated)", remaining, capacity, got, capacity)
			}
		}
	}
}

func TestReleaseNegativeCapacity(t *testing.T) {
	if got := Release(0, -3); got != 0 {
		t.Errorf("Release(0, -3) = %d, want 0 (negative capacity normalized)", got)
	}
	if got := Release(5, -1); got != 0 {
		t.Errorf("Release(5, -1) = %d, want 0", got)
	}
}
