package weather

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"scattered clouds", "Scattered Clouds"},
		{"tuscaloosa", "Tuscaloosa"},
		{"new york", "New York"},
		{"águeda", "Águeda"},
		{"über lingen", "Über Lingen"},
		{"  padded   input  ", "Padded Input"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
