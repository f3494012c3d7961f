package onboarding

import "testing"

func TestCompletionPercent(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty checklist", 0, 0, 0},
		{"none done", 0, 3, 0},
		{"one of three rounds up", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"half", 1, 2, 50},
		{"all done", 3, 3, 100},
		{"one of six rounds half up", 1, 6, 17},
		{"one of eight", 1, 8, 13},
		{"negative total", 2, -1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompletionPercent(tc.completed, tc.total); got != tc.want {
				t.Fatalf("CompletionPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
			}
		})
	}
}
