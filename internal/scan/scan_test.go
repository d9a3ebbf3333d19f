package scan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var twoScans = []byte{0x00, 0x01, 0xff, 0xda, 0x02, 0x03, 0xff, 0xda, 0x04}

func TestFindOffsets(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []int
	}{
		{name: "empty", data: nil, want: []int{}},
		{name: "single byte", data: []byte{0xff}, want: []int{}},
		{name: "trailing prefix", data: []byte{0x00, 0xff}, want: []int{}},
		{name: "marker at start", data: []byte{0xff, 0xda}, want: []int{0}},
		{name: "marker at end", data: []byte{0x00, 0x00, 0xff, 0xda}, want: []int{2}},
		{name: "two scans", data: twoScans, want: []int{2, 6}},
		{name: "repeated da", data: []byte{0xff, 0xda, 0xda, 0xff, 0xda}, want: []int{0, 3}},
		{name: "fill bytes", data: []byte{0xff, 0xff, 0xda}, want: []int{1}},
		{name: "reversed pair", data: []byte{0xda, 0xff}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOffsets(tt.data)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FindOffsets(% x) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestSelectOffset(t *testing.T) {
	offsets := []int{2, 6, 11}

	for n, want := range map[int]int{1: 11, 2: 6, 3: 2} {
		got, err := SelectOffset(offsets, n)
		if err != nil {
			t.Fatalf("SelectOffset(%d): %v", n, err)
		}
		if got != want {
			t.Fatalf("SelectOffset(%d) = %d, want %d", n, got, want)
		}
	}

	_, err := SelectOffset(offsets, 4)
	if !errors.Is(err, ErrNotEnoughScans) {
		t.Fatalf("expected ErrNotEnoughScans, got %v", err)
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Want != 4 || rangeErr.Found != 3 {
		t.Fatalf("expected RangeError{4, 3}, got %#v", err)
	}

	for _, n := range []int{0, -1} {
		if _, err := SelectOffset(offsets, n); !errors.Is(err, ErrInvalidScanCount) {
			t.Fatalf("SelectOffset(%d): expected ErrInvalidScanCount, got %v", n, err)
		}
	}

	if _, err := SelectOffset(nil, 1); !errors.Is(err, ErrNotEnoughScans) {
		t.Fatalf("empty offsets: expected ErrNotEnoughScans, got %v", err)
	}
}

func TestCut(t *testing.T) {
	res, err := Cut(twoScans, 1)
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	if !reflect.DeepEqual(res.Offsets, []int{2, 6}) || res.Selected != 6 || res.Written != 6 {
		t.Fatalf("unexpected result: %#v", res)
	}

	res, err = Cut(twoScans, 2)
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	if res.Selected != 2 {
		t.Fatalf("expected offset 2, got %d", res.Selected)
	}

	if _, err := Cut(twoScans, 3); !errors.Is(err, ErrNotEnoughScans) {
		t.Fatalf("expected ErrNotEnoughScans, got %v", err)
	}
}

func TestTruncateFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.jpg")
	if err := os.WriteFile(src, twoScans, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	tests := []struct {
		n    int
		want []byte
	}{
		{n: 1, want: []byte{0x00, 0x01, 0xff, 0xda, 0x02, 0x03}},
		{n: 2, want: []byte{0x00, 0x01}},
	}

	for _, tt := range tests {
		dst := filepath.Join(dir, "out.jpg")
		res, err := TruncateFile(src, dst, tt.n)
		if err != nil {
			t.Fatalf("truncate n=%d: %v", tt.n, err)
		}
		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Fatalf("n=%d: output = % x, want % x", tt.n, got, tt.want)
		}
		if res.Written != len(tt.want) {
			t.Fatalf("n=%d: written = %d, want %d", tt.n, res.Written, len(tt.want))
		}
	}
}

func TestTruncateFileHonorsUmask(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.jpg")
	if err := os.WriteFile(src, twoScans, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	// os.Create applies the same 0666 less umask rule.
	ref, err := os.Create(filepath.Join(dir, "ref"))
	if err != nil {
		t.Fatalf("create reference: %v", err)
	}
	_ = ref.Close()
	refInfo, err := os.Stat(ref.Name())
	if err != nil {
		t.Fatalf("stat reference: %v", err)
	}

	dst := filepath.Join(dir, "out.jpg")
	if _, err := TruncateFile(src, dst, 1); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Mode().Perm() != refInfo.Mode().Perm() {
		t.Fatalf("output mode = %v, want %v", info.Mode().Perm(), refInfo.Mode().Perm())
	}
}

func TestTruncateFileNotEnoughScans(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.jpg")
	if err := os.WriteFile(src, twoScans, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	dst := filepath.Join(dir, "out.jpg")
	if _, err := TruncateFile(src, dst, 3); !errors.Is(err, ErrNotEnoughScans) {
		t.Fatalf("expected ErrNotEnoughScans, got %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}

	// An existing output stays as it was.
	if err := os.WriteFile(dst, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}
	if _, err := TruncateFile(src, dst, 5); err == nil {
		t.Fatalf("expected error")
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "keep" {
		t.Fatalf("output was modified: %q", got)
	}
}

func TestTruncateFileEmptyInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.jpg")
	if err := os.WriteFile(src, nil, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	dst := filepath.Join(dir, "out.jpg")
	res, err := TruncateFile(src, dst, 1)
	if !errors.Is(err, ErrNotEnoughScans) {
		t.Fatalf("expected ErrNotEnoughScans, got %v", err)
	}
	if len(res.Offsets) != 0 {
		t.Fatalf("expected no offsets, got %v", res.Offsets)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestTruncateFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := TruncateFile(filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "out.jpg"), 1)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestFormatOffsets(t *testing.T) {
	if got := FormatOffsets([]int{2, 6}); got != "[2, 6]" {
		t.Fatalf("got %q", got)
	}
	if got := FormatOffsets(nil); got != "[]" {
		t.Fatalf("got %q", got)
	}
}
