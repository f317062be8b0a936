package sheet

import (
	"errors"
	"testing"
)

func TestClassifyLayouts(t *testing.T) {
	cases := []struct {
		name   string
		height int
		width  int
		want   PageType
	}{
		{"narrow tall strip", 900, 300, NarrowTall},
		{"nested full page", 1200, 900, NestedA4},
		{"answer box only", 500, 400, AnswerBoxOnly},
		{"tall but wide enough", 900, 700, AnswerBoxOnly},
		{"boundary width narrow tall", 1100, 549, NarrowTall},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.height, tc.width)
			if err != nil {
				t.Fatalf("Classify(%d, %d) error: %v", tc.height, tc.width, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%d, %d) = %v, want %v", tc.height, tc.width, got, tc.want)
			}
		})
	}
}

func TestClassifyTooSmall(t *testing.T) {
	_, err := Classify(150, 400)
	if !errors.Is(err, ErrRectangleTooSmall) {
		t.Fatalf("Classify(150, 400) error = %v, want ErrRectangleTooSmall", err)
	}
}

func TestPageTypeProperties(t *testing.T) {
	if got := NarrowTall.Questions(); got != 41 {
		t.Errorf("NarrowTall.Questions() = %d, want 41", got)
	}
	if got := NarrowTall.Blocks(); got != 2 {
		t.Errorf("NarrowTall.Blocks() = %d, want 2", got)
	}
	if got := NestedA4.Questions(); got != 22 {
		t.Errorf("NestedA4.Questions() = %d, want 22", got)
	}
	if !NestedA4.NeedsSecondPass() {
		t.Error("NestedA4.NeedsSecondPass() = false, want true")
	}
	if AnswerBoxOnly.NeedsSecondPass() {
		t.Error("AnswerBoxOnly.NeedsSecondPass() = true, want false")
	}
	if got := AnswerBoxOnly.String(); got != "answer-box-only" {
		t.Errorf("AnswerBoxOnly.String() = %q", got)
	}
}
