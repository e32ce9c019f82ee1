package dimacs

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/boolsmt/sat"
)

type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) AddVariable() int {
	i.Variables++
	return i.Variables - 1
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

var want = instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{0, 2, 4},
		{0, 2, 5},
		{0, 3, 4},
		{1, 2, 4},
		{1, 3, 4},
		{1, 2, 5},
		{0, 3, 5},
		{1, 3, 5},
	},
}

func TestParseDIMACS_cnf(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf", false, &got)

	if gotErr != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_gzip(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf.gz", true, &got)

	if gotErr != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_noFile(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("", false, &got)

	if gotErr == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
}

func TestParseDIMACS_gzip_notGzipFile(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf", true, &got)

	if gotErr == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
}

func TestWatchDirectoryNotifiesOnNewCNF(t *testing.T) {
	dir := t.TempDir()

	seen := make(chan string, 1)
	closer, err := WatchDirectory(dir, func(path string) {
		seen <- path
	})
	if err != nil {
		t.Fatalf("WatchDirectory: %v", err)
	}
	defer closer.Close()

	path := filepath.Join(dir, "instance.cnf")
	if err := os.WriteFile(path, []byte("p cnf 1 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-seen:
		if got != path {
			t.Errorf("onInstance called with %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("onInstance was not called within 5s of creating a .cnf file")
	}
}

func TestWatchDirectoryIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	seen := make(chan string, 1)
	closer, err := WatchDirectory(dir, func(path string) {
		seen <- path
	})
	if err != nil {
		t.Fatalf("WatchDirectory: %v", err)
	}
	defer closer.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-seen:
		t.Fatalf("onInstance unexpectedly called with %q", got)
	case <-time.After(200 * time.Millisecond):
		// expected: no callback for a non-instance file
	}
}
