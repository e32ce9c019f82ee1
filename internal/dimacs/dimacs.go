package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rhartert/boolsmt/sat"
)

type dimacsWritter interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

func LoadDIMACS(filename string, gzipped bool, dw dimacsWritter) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)

	// Parse header and variables
	// --------------------------

	nVars := 0
	nClauses := 0

	for {
		if !scanner.Scan() {
			return fmt.Errorf("header line not found")
		}
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		parts := strings.Fields(line)
		if parts[1] != "cnf" {
			return fmt.Errorf("instance of type %q are not supported", parts[1])
		}
		nVars, err = strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("could not parse header: %w", err)
		}
		nClauses, err = strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("could not parse header: %w", err)
		}

		break
	}

	// varIDs[i] is the solver variable id AddVariable returned for DIMACS
	// variable i (1-indexed). It is not assumed to equal i-1: a dimacsWritter
	// backed by a *sat.Solver already has variable 0 reserved for the
	// predefined constant true, so the ids handed back for a fresh DIMACS
	// instance start at 1, not 0.
	varIDs := make([]int, nVars+1)
	for i := 1; i <= nVars; i++ {
		varIDs[i] = dw.AddVariable()
	}

	// Parse clauses
	// -------------

	litBuffer := make([]sat.Literal, 32)
	for nClauses > 0 && scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}

		litBuffer = litBuffer[:0] // reset
		parts := strings.Fields(line)
		for _, p := range parts {
			l, err := strconv.Atoi(p)
			if err != nil {
				return err
			}
			switch {
			case l < 0:
				litBuffer = append(litBuffer, sat.NegativeLiteral(varIDs[-l]))
			case l > 0:
				litBuffer = append(litBuffer, sat.PositiveLiteral(varIDs[l]))
			default:
				// drop 0
			}
		}

		dw.AddClause(litBuffer)
		nClauses--
	}

	return nil
}

// WatchDirectory watches dir for created or written .cnf/.cnf.gz files,
// invoking onInstance with each new file's path as they appear. It runs
// until ctx-like cancellation is requested by closing the returned
// io.Closer, matching the simple start/stop lifecycle the rest of this
// package uses rather than pulling in a context-based API for a single
// watch loop.
func WatchDirectory(dir string, onInstance func(path string)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dimacs: creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("dimacs: watching %q: %w", dir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				switch filepath.Ext(event.Name) {
				case ".cnf":
					onInstance(event.Name)
				case ".gz":
					if strings.HasSuffix(event.Name, ".cnf.gz") {
						onInstance(event.Name)
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher, nil
}
