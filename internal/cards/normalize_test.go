package cards

import "testing"

func TestImageKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Holmes", "holmes"},
		{"diacritics", "Otra Víctima", "otra-victima"},
		{"punctuation", "¡Una Más!", "una-mas"},
		{"mixed separators", "Cartas_Fuera - Mesa", "cartas-fuera-mesa"},
		{"collapses spaces", "  Delay   Escape ", "delay-escape"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImageKey(tc.in); got != tc.want {
				t.Fatalf("ImageKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
