package icon

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		goos      string
		wtSession string
		want      Set
	}{
		{"linux", "", Unicode},
		{"darwin", "", Unicode},
		{"windows", "", Legacy},
		{"windows", "9f1c2d", Unicode},
	}

	for _, tt := range tests {
		if got := Select(tt.goos, tt.wtSession); got != tt.want {
			t.Errorf("Select(%q, %q) = %+v, want %+v", tt.goos, tt.wtSession, got, tt.want)
		}
	}
}
