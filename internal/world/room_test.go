package world

import "testing"

func TestRoomCenter(t *testing.T) {
	room := NewRoom(10, 20, 6, 8)

	x, y := room.Center()
	if x != 13 || y != 24 {
		t.Errorf("Center() = (%d,%d), want (13,24)", x, y)
	}
}

func TestRoomIntersects(t *testing.T) {
	base := NewRoom(10, 10, 6, 6) // corners (10,10)-(16,16)

	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"overlapping", NewRoom(13, 13, 6, 6), true},
		{"contained", NewRoom(11, 11, 2, 2), true},
		{"identical", NewRoom(10, 10, 6, 6), true},
		{"touching right edge", NewRoom(16, 10, 6, 6), true},
		{"touching bottom edge", NewRoom(10, 16, 6, 6), true},
		{"touching corner", NewRoom(16, 16, 4, 4), true},
		{"one apart horizontally", NewRoom(17, 10, 6, 6), false},
		{"one apart vertically", NewRoom(10, 17, 6, 6), false},
		{"far away", NewRoom(40, 40, 6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRoomContainsInteriorOnly(t *testing.T) {
	room := NewRoom(10, 10, 6, 6)

	if !room.Contains(11, 11) {
		t.Error("interior point (11,11) should be contained")
	}
	if !room.Contains(15, 15) {
		t.Error("interior point (15,15) should be contained")
	}
	// The boundary ring stays wall and is not part of the room proper.
	if room.Contains(10, 12) {
		t.Error("boundary point (10,12) should not be contained")
	}
	if room.Contains(16, 12) {
		t.Error("boundary point (16,12) should not be contained")
	}
}
