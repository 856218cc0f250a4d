package elfscan

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestIsELF(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "empty file", data: nil, want: false},
		{name: "one byte", data: []byte{0x7f}, want: false},
		{name: "three magic bytes", data: []byte{0x7f, 'E', 'L'}, want: false},
		{name: "exact magic", data: []byte{0x7f, 'E', 'L', 'F'}, want: true},
		{name: "magic with header", data: elfHeader, want: true},
		{name: "magic with arbitrary tail", data: append([]byte{0x7f, 'E', 'L', 'F'}, []byte("anything at all")...), want: true},
		{name: "shell script", data: []byte("#!/bin/sh\necho hi\n"), want: false},
		{name: "lowercase magic", data: []byte{0x7f, 'e', 'l', 'f'}, want: false},
		{name: "magic at offset", data: []byte{0, 0x7f, 'E', 'L', 'F'}, want: false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, fmt.Sprintf("file-%d", i), tt.data)
			if got := IsELF(path); got != tt.want {
				t.Fatalf("IsELF(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsELFUnreadable(t *testing.T) {
	dir := t.TempDir()

	if IsELF(filepath.Join(dir, "missing")) {
		t.Fatal("expected missing file to be rejected")
	}
	if IsELF(dir) {
		t.Fatal("expected directory to be rejected")
	}

	if os.Geteuid() != 0 {
		path := writeFile(t, dir, "locked", elfHeader)
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		if IsELF(path) {
			t.Fatal("expected unreadable file to be rejected")
		}
	}
}

func TestIsELFStable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bin", elfHeader)
	for i := 0; i < 3; i++ {
		if !IsELF(path) {
			t.Fatalf("observation %d disagreed", i)
		}
	}
}
