package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with player bar",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4},
			want:         35,
		},
		{
			name:         "with status line",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4, HasStatusLine: true},
			want:         34,
		},
		{
			name:         "never negative",
			windowHeight: 3,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{60, true},
		{NarrowThreshold - 1, true},
		{NarrowThreshold, false},
		{200, false},
	}
	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSidebarAndPageWidth(t *testing.T) {
	if got := SidebarWidth(60, 26); got != 0 {
		t.Errorf("SidebarWidth(narrow) = %d, want 0", got)
	}
	if got := PageWidth(60, 26); got != 60 {
		t.Errorf("PageWidth(narrow) = %d, want 60", got)
	}
	if got := SidebarWidth(120, 26); got != 26 {
		t.Errorf("SidebarWidth(wide) = %d, want 26", got)
	}
	if got := PageWidth(120, 26); got != 94 {
		t.Errorf("PageWidth(wide) = %d, want 94", got)
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		name                  string
		width, cardWidth, gap int
		want                  int
	}{
		{"exact fit", 50, 24, 2, 2},
		{"one short of two", 49, 24, 2, 1},
		{"narrow still one", 10, 24, 2, 1},
		{"wide", 94, 24, 2, 3},
		{"zero card width", 80, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridColumns(tt.width, tt.cardWidth, tt.gap); got != tt.want {
				t.Errorf("GridColumns(%d, %d, %d) = %d, want %d",
					tt.width, tt.cardWidth, tt.gap, got, tt.want)
			}
		})
	}
}
