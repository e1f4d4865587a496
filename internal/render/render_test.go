package render

import "testing"

func TestRows(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "board",
			got:  Board([][]string{{"x", "x", "o"}, {"o", "x", "x"}, {"x", "o", "o"}}),
			want: "|xxo|oxx|xoo|",
		},
		{
			name: "ints",
			got:  Rows([][]int{{1, 2}, {3, 4}}, " "),
			want: "|1 2|3 4|",
		},
		{
			name: "empty",
			got:  Rows[int](nil, " "),
			want: "|",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatterPlain(t *testing.T) {
	f, err := NewFormatter("")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   any
		want string
	}{
		{in: 1234567, want: "1234567"},
		{in: "(255, 0, 0)", want: "(255, 0, 0)"},
		{in: true, want: "true"},
		{in: [][]any{{1, 3}, {2, 4}}, want: "|1 3|2 4|"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.in); got != tt.want {
			t.Errorf("Format(%v)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatterLocale(t *testing.T) {
	f, err := NewFormatter("en")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(1234567); got != "1,234,567" {
		t.Errorf("got %q want 1,234,567", got)
	}
	if got := f.Format("ff"); got != "ff" {
		t.Errorf("got %q want ff", got)
	}
}

func TestFormatterBadLocale(t *testing.T) {
	if _, err := NewFormatter("not a locale!"); err == nil {
		t.Error("expected parse error")
	}
}
