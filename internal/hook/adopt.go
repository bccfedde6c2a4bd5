package hook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/raphi011/husk/internal/log"
)

// adoptUserHook copies one operator-authored hook script into the
// hooks directory, splicing the provenance comment in as the third
// line. The destination keeps the source's filename. A destination
// protected by the ownership check is skipped silently.
func adoptUserHook(l *log.Logger, src, hooksDir, marker string) error {
	dst := filepath.Join(hooksDir, filepath.Base(src))
	if protected(dst, marker) {
		l.Debug("skipping protected hook", "path", dst)
		return nil
	}

	lines, err := readLines(src)
	if err != nil {
		return fmt.Errorf("read user hook %s: %w", src, err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyUserHook, src)
	}

	// The provenance comment must land on line three, so a script
	// without a shebang gets an empty comment in the shebang slot.
	if !strings.HasPrefix(lines[0], "#!") {
		lines = slices.Insert(lines, 0, "#")
	}
	lines = slices.Insert(lines, 1, "#")
	lines = slices.Insert(lines, 2, marker)

	f, err := createHookFile(dst)
	if err != nil {
		return fmt.Errorf("create hook %s: %w", dst, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return fmt.Errorf("write hook %s: %w", dst, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write hook %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write hook %s: %w", dst, err)
	}

	l.Debug("adopted user hook", "hook", filepath.Base(src), "path", dst)
	return nil
}

// readLines reads a file into lines without trailing newlines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
