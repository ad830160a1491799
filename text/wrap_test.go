package text

import (
	"slices"
	"strings"
	"testing"
)

// monoMetrics gives every rune the same width; lines are 20px tall.
type monoMetrics struct {
	width float64
}

func (m monoMetrics) Glyph(r rune) Glyph {
	return Glyph{Rune: r, HasRune: true, Width: m.width, Height: 20}
}

func (monoMetrics) LineHeight() float64 { return 20 }

func mono10(r rune) float64 { return 10 }

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want BreakClass
	}{
		{"space", ' ', breakSpace},
		{"tab", '\t', breakSpace},
		{"no-break space", '\u00A0', breakSpace},
		{"zero-width space", '\u200B', breakZero},
		{"open paren", '(', breakOpen},
		{"close bracket", ']', breakClose},
		{"right double quote", '\u201D', breakClose},
		{"hyphen", '-', breakHyphen},
		{"em dash", '\u2014', breakHyphen},
		{"CJK ideograph", '一', breakIdeographic},
		{"katakana", 'ア', breakIdeographic},
		{"latin a", 'a', breakOther},
		{"digit", '7', breakOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyRune(tt.r); got != tt.want {
				t.Errorf("classifyRune(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestCanBreakBetween(t *testing.T) {
	tests := []struct {
		prev, curr rune
		want       bool
	}{
		{' ', 'a', true},
		{'a', ' ', false},
		{' ', ' ', false},
		{'a', 'b', false},
		{'-', 'k', true},
		{'-', '-', false},
		{'\u200B', 'a', true},
		{'(', 'a', false},
		{' ', ')', false},
		{'a', '一', true},
		{'一', '丁', true},
		{'一', ' ', false},
	}

	for _, tt := range tests {
		if got := canBreakBetween(tt.prev, tt.curr); got != tt.want {
			t.Errorf("canBreakBetween(%q, %q) = %v, want %v", tt.prev, tt.curr, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 100, []string{""}},
		{"fits", "ab", 100, []string{"ab"}},
		{"no wrapping", "hello world", 0, []string{"hello world"}},
		{"explicit break", "a\nb", 100, []string{"a", "b"}},
		{"trailing break", "a\n", 100, []string{"a", ""}},
		{"blank lines", "\n\n", 100, []string{"", "", ""}},
		{"break at space", "hello world", 60, []string{"hello ", "world"}},
		{"carry partial word", "foo bar baz", 50, []string{"foo ", "bar ", "baz"}},
		{"oversized token", "abcdefgh", 30, []string{"abc", "def", "gh"}},
		{"oversized after word", "ab cdefgh", 30, []string{"ab ", "cde", "fgh"}},
		{"hyphen", "well-known fact", 80, []string{"well-", "known ", "fact"}},
		{"break resets width", "abcd\nabcd", 40, []string{"abcd", "abcd"}},
		{"wrap then break", "aaa bbb\nc", 40, []string{"aaa ", "bbb", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.maxWidth, mono10)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSplit_CJK(t *testing.T) {
	cells := NewCellMetrics()
	got := Split("日本語テキスト", 6, WidthFunc(cells))
	want := []string{"日本語", "テキス", "ト"}
	if !slices.Equal(got, want) {
		t.Errorf("Split CJK = %q, want %q", got, want)
	}
}

func TestSplit_NeverExceedsMaxWidth(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh",
		"supercalifragilisticexpialidocious is long",
		"line one\nline two is a little longer\n\nend",
		"   leading and trailing spaces   ",
	}

	for _, text := range texts {
		for _, maxWidth := range []float64{10, 25, 40, 70, 130} {
			lines := Split(text, maxWidth, mono10)
			for _, line := range lines {
				if w := float64(len([]rune(line))) * 10; w > maxWidth {
					t.Errorf("Split(%q, %v): line %q width %v exceeds max", text, maxWidth, line, w)
				}
			}
		}
	}
}

func TestSplit_PreservesRunes(t *testing.T) {
	text := "alpha beta\ngamma delta epsilon\n\nzeta"
	lines := Split(text, 50, mono10)

	got := strings.Join(lines, "")
	want := strings.ReplaceAll(text, "\n", "")
	if got != want {
		t.Errorf("joined lines = %q, want %q", got, want)
	}
	for _, line := range lines {
		if strings.ContainsRune(line, '\n') {
			t.Errorf("line %q contains a line break", line)
		}
	}
}

func TestSplit_SinglePass(t *testing.T) {
	text := "one two three four five six seven\neight nine ten"
	calls := 0
	widthOf := func(r rune) float64 {
		calls++
		return 10
	}

	Split(text, 45, widthOf)

	want := len([]rune(text)) - strings.Count(text, "\n")
	if calls != want {
		t.Errorf("widthOf called %d times, want %d", calls, want)
	}
}

func TestSplitLines_Spans(t *testing.T) {
	spans := splitLines("ab cd\nef", 30, mono10)

	type span struct {
		text  string
		start int
		hard  bool
	}
	want := []span{
		{"ab ", 0, false},
		{"cd", 3, true},
		{"ef", 6, false},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i, s := range spans {
		got := span{string(s.runes), s.start, s.hard}
		if got != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestMeasureString(t *testing.T) {
	if got := MeasureString("abcd", monoMetrics{width: 10}); got != 40 {
		t.Errorf("MeasureString = %v, want 40", got)
	}
	if got := MeasureString("", monoMetrics{width: 10}); got != 0 {
		t.Errorf("MeasureString(\"\") = %v, want 0", got)
	}
}

func BenchmarkSplit(b *testing.B) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)
	b.ReportAllocs()
	for b.Loop() {
		_ = Split(text, 300, mono10)
	}
}
