package carousel

import "testing"

func TestComputeCenterOffset(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want float64
	}{
		{
			name: "item right of center",
			g:    Geometry{ContainerWidth: 400, ItemLeft: 150, ItemWidth: 300},
			want: 100, // 0 + 150 + 150 - 200
		},
		{
			name: "already centered",
			g:    Geometry{ContainerWidth: 400, ItemLeft: 100, ItemWidth: 200},
			want: 0,
		},
		{
			name: "existing scroll is kept",
			g:    Geometry{ContainerWidth: 400, ItemLeft: 150, ItemWidth: 300, ScrollLeft: 250},
			want: 350,
		},
		{
			name: "container not at origin",
			g:    Geometry{ContainerLeft: 30, ContainerWidth: 400, ItemLeft: 180, ItemWidth: 300},
			want: 100,
		},
		{
			name: "item left of viewport yields negative offset",
			g:    Geometry{ContainerWidth: 400, ItemLeft: -50, ItemWidth: 100},
			want: -200,
		},
		{
			name: "odd widths keep fractions",
			g:    Geometry{ContainerWidth: 81, ItemLeft: 10, ItemWidth: 27},
			want: -17, // 10 + 13.5 - 40.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCenterOffset(tt.g)
			if got != tt.want {
				t.Errorf("ComputeCenterOffset(%+v) = %v, want %v", tt.g, got, tt.want)
			}
		})
	}
}

func TestComputeCenterOffset_Formula(t *testing.T) {
	// s + d + w/2 - W/2 for a spread of values.
	for _, W := range []float64{80, 120, 400} {
		for _, d := range []float64{-60, 0, 35, 500} {
			for _, w := range []float64{10, 28, 300} {
				for _, s := range []float64{0, 12, 640} {
					g := Geometry{ContainerLeft: 7, ContainerWidth: W, ItemLeft: 7 + d, ItemWidth: w, ScrollLeft: s}
					want := s + d + w/2 - W/2
					if got := ComputeCenterOffset(g); got != want {
						t.Fatalf("W=%v d=%v w=%v s=%v: got %v, want %v", W, d, w, s, got, want)
					}
				}
			}
		}
	}
}
