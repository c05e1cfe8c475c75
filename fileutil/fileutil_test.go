package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// useMemFs swaps the package filesystem for an in-memory one for the
// duration of a test.
func useMemFs(t *testing.T) {
	t.Helper()
	orig := fs
	fs = afero.NewMemMapFs()
	t.Cleanup(func() { fs = orig })
}

func TestWriteReadAppendDelete(t *testing.T) {
	useMemFs(t)
	path := filepath.Join("tmp", "note.txt")

	if err := WriteFile(path, "hello"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadFile() = %q, want %q", got, "hello")
	}

	n, err := AppendFile(path, "123456")
	if err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}
	if n != 6 {
		t.Errorf("AppendFile() wrote %d bytes, want 6", n)
	}

	got, err = ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() after append error = %v", err)
	}
	if got != "hello123456" {
		t.Errorf("ReadFile() = %q, want %q", got, "hello123456")
	}

	if err := DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile() after delete should fail")
	}
}

func TestWriteTruncates(t *testing.T) {
	useMemFs(t)

	if err := WriteFile("f.txt", "long original contents"); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile("f.txt", "short"); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile("f.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "short" {
		t.Errorf("ReadFile() = %q, want %q", got, "short")
	}
}

func TestAppendCreatesFile(t *testing.T) {
	useMemFs(t)

	n, err := AppendFile("fresh.txt", "abc")
	if err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}
	if n != 3 {
		t.Errorf("AppendFile() wrote %d bytes, want 3", n)
	}
	got, err := ReadFile("fresh.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc" {
		t.Errorf("ReadFile() = %q, want %q", got, "abc")
	}
}

func TestBlankPath(t *testing.T) {
	useMemFs(t)

	for _, path := range []string{"", "   ", "\t"} {
		if _, err := ReadFile(path); !errors.Is(err, ErrBlankPath) {
			t.Errorf("ReadFile(%q) error = %v, want ErrBlankPath", path, err)
		}
		if err := WriteFile(path, "x"); !errors.Is(err, ErrBlankPath) {
			t.Errorf("WriteFile(%q) error = %v, want ErrBlankPath", path, err)
		}
		if _, err := AppendFile(path, "x"); !errors.Is(err, ErrBlankPath) {
			t.Errorf("AppendFile(%q) error = %v, want ErrBlankPath", path, err)
		}
		if err := DeleteFile(path); !errors.Is(err, ErrBlankPath) {
			t.Errorf("DeleteFile(%q) error = %v, want ErrBlankPath", path, err)
		}
		if _, err := ReadDir(path); !errors.Is(err, ErrBlankPath) {
			t.Errorf("ReadDir(%q) error = %v, want ErrBlankPath", path, err)
		}
	}
}

func TestNotFound(t *testing.T) {
	useMemFs(t)

	_, err := ReadFile(filepath.Join("no", "such", "file"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestReadDir(t *testing.T) {
	useMemFs(t)
	dir := "box"

	for _, name := range []string{"a.txt", "b.txt"} {
		if err := WriteFile(filepath.Join(dir, name), name); err != nil {
			t.Fatal(err)
		}
	}
	// Nested entry must not appear in a non-recursive listing
	if err := WriteFile(filepath.Join(dir, "sub", "c.txt"), "c"); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	sort.Strings(paths)

	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub"),
	}
	if len(paths) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("ReadDir()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestOnRealFilesystem(t *testing.T) {
	// The default backend is the OS filesystem; exercise it once.
	path := filepath.Join(t.TempDir(), "real.txt")
	if err := WriteFile(path, "on disk"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "on disk" {
		t.Errorf("ReadFile() = %q, want %q", got, "on disk")
	}
	if err := DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
}
