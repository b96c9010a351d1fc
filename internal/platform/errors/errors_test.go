package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeDatasetMissing, "missing dataset data/roster.csv", fs.ErrNotExist)
	want := "missing dataset data/roster.csv: " + fs.ErrNotExist.Error()
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Fatal("expected wrapped cause to match fs.ErrNotExist")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load: %w", WithMetadata(CodeColumnMissing, "column Race not found", map[string]string{"column": "Race"}))
	if !stderrors.Is(err, New(CodeColumnMissing, "")) {
		t.Fatal("expected error to match by code")
	}
	if stderrors.Is(err, New(CodeDatasetMissing, "")) {
		t.Fatal("expected different code not to match")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "plain", err: stderrors.New("boom"), want: CodeUnknown},
		{name: "direct", err: New(CodeChartEmpty, "empty"), want: CodeChartEmpty},
		{name: "wrapped", err: fmt.Errorf("render: %w", WrapWithMetadata(CodePaletteUnsupported, "palette", nil, nil)), want: CodePaletteUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
