package vaultutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestRandomName_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		name, err := RandomName()
		if err != nil {
			t.Fatalf("RandomName() error = %v", err)
		}
		if strings.ContainsRune(name, os.PathSeparator) {
			t.Fatalf("RandomName produced a path separator: %q", name)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("RandomName produced a duplicate: %q", name)
		}
		seen[name] = struct{}{}
	}
}

func TestRandomName_Format(t *testing.T) {
	t.Parallel()

	name, err := RandomName()
	if err != nil {
		t.Fatalf("RandomName() error = %v", err)
	}
	parts := strings.SplitN(name, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("RandomName() = %q, want <rand>-<epoch>", name)
	}
	if _, err := strconv.ParseUint(parts[0], 10, 64); err != nil {
		t.Errorf("random prefix %q is not a uint64: %v", parts[0], err)
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Errorf("epoch suffix %q is not an integer: %v", parts[1], err)
	}
}

func TestRandomPath_JoinsDirAndExtension(t *testing.T) {
	t.Parallel()

	path, err := RandomPath("/tmp/vaults", ".vault")
	if err != nil {
		t.Fatalf("RandomPath() error = %v", err)
	}
	if filepath.Dir(path) != "/tmp/vaults" {
		t.Errorf("RandomPath dir = %q, want %q", filepath.Dir(path), "/tmp/vaults")
	}
	if filepath.Ext(path) != ".vault" {
		t.Errorf("RandomPath ext = %q, want %q", filepath.Ext(path), ".vault")
	}
}

func TestSetRandReaderForTesting_Deterministic(t *testing.T) {
	restore := SetRandReaderForTesting(strings.NewReader(strings.Repeat("x", 64)))
	defer restore()

	buf, err := RandomBytes(8)
	if err != nil {
		t.Fatalf("RandomBytes() error = %v", err)
	}
	if string(buf) != "xxxxxxxx" {
		t.Errorf("RandomBytes with deterministic reader = %q, want %q", buf, "xxxxxxxx")
	}
}

func TestReadMetaFile_ReadsAndDeletes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "META")
	want := []byte("serialized manifest contents")
	if err := os.WriteFile(path, want, 0o600); err != nil {
		t.Fatalf("WriteFile setup error = %v", err)
	}

	got, err := ReadMetaFile(dir)
	if err != nil {
		t.Fatalf("ReadMetaFile() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadMetaFile() = %q, want %q", got, want)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("ReadMetaFile left the manifest file on disk")
	}
}

func TestReadMetaFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadMetaFile(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing meta file")
	}
}
