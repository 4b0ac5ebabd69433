package schedule

import "testing"

func TestRestWindow(t *testing.T) {
	s := newStore(4)
	s.place(0, Pairing{1, 2})
	s.place(1, Pairing{3, 4})
	s.place(2, Pairing{1, 3})

	tests := []struct {
		team     Team
		pos, gap int
		seen     int
	}{
		{1, 3, 1, 1},
		{2, 3, 1, 0},
		{2, 3, 3, 3},
		{4, 3, 2, 2},
		{3, 2, 1, 1},
		{1, 0, 2, 0},
	}

	for _, tt := range tests {
		if got := s.lastSeen(tt.team, tt.pos, tt.gap); got != tt.seen {
			t.Errorf("lastSeen(%d, %d, %d) = %d, want %d", tt.team, tt.pos, tt.gap, got, tt.seen)
		}
		if got, want := s.playedWithin(tt.team, tt.pos, tt.gap), tt.seen > 0; got != want {
			t.Errorf("playedWithin(%d, %d, %d) = %v, want %v", tt.team, tt.pos, tt.gap, got, want)
		}
	}

	t.Run("unfilled fixtures are ignored", func(t *testing.T) {
		s.clear(2)
		if s.playedWithin(1, 3, 1) {
			t.Error("team 1 seen in a cleared fixture")
		}
		if s.windowFilled(3, 1) {
			t.Error("window before fixture 3 reported filled")
		}
	})
}
