package text

import "testing"

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
		{Alignment(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestParseHinting(t *testing.T) {
	tests := []struct {
		in      string
		want    Hinting
		wantErr bool
	}{
		{"", HintingFull, false},
		{"none", HintingNone, false},
		{"Vertical", HintingVertical, false},
		{" FULL ", HintingFull, false},
		{"slight", HintingFull, true},
	}

	for _, tt := range tests {
		got, err := ParseHinting(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHinting(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseHinting(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := RectFromPoints(Pt(1, 2), Pt(4, 8))

	if r.Width() != 3 || r.Height() != 6 {
		t.Errorf("size = %vx%v, want 3x6", r.Width(), r.Height())
	}
	if r.Min() != Pt(1, 2) || r.Max() != Pt(4, 8) {
		t.Errorf("corners = %v %v", r.Min(), r.Max())
	}
	if r.Empty() {
		t.Error("Empty() = true for a 3x6 rect")
	}
	if !r.Contains(Pt(1, 2)) || r.Contains(Pt(4, 5)) || r.Contains(Pt(0, 5)) {
		t.Error("Contains() disagrees with half-open bounds")
	}

	zeroWidth := Rect{MinX: 10, MinY: 0, MaxX: 10, MaxY: 20}
	if !zeroWidth.Empty() {
		t.Error("zero-width rect is not empty")
	}
	if got := r.Union(zeroWidth); got != r {
		t.Errorf("Union with empty = %v, want %v", got, r)
	}
	if got := zeroWidth.Union(r); got != r {
		t.Errorf("empty Union r = %v, want %v", got, r)
	}

	other := Rect{MinX: 0, MinY: 5, MaxX: 2, MaxY: 10}
	want := Rect{MinX: 0, MinY: 2, MaxX: 4, MaxY: 10}
	if got := r.Union(other); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestPointAdd(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, -1)); got != Pt(4, 1) {
		t.Errorf("Add = %v, want (4, 1)", got)
	}
}
