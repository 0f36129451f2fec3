package log

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryResolved, "RESOLVED"},
		{CategoryRejected, "REJECTED"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceParse, "PARSE"},
		{SourceOverlay, "OVERLAY"},
		{SourceProfile, "PROFILE"},
		{Source(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.src.String()
		if got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}
