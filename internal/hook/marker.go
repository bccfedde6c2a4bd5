package hook

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// markerPrefix identifies a hook written by any version of husk.
// The full marker line appends the version and homepage. Both the text
// and its position (third line of the script) are frozen: existing
// hooks on user machines are recognized by exactly this fingerprint.
const markerPrefix = "This hook was set by husk"

// markerRe extracts the version from a provenance comment line.
var markerRe = regexp.MustCompile(`This hook was set by husk v(\S+): (\S+)`)

// markerLine returns the provenance comment line for a version and
// homepage, as written into generated and adopted scripts.
func markerLine(version, homepage string) string {
	return fmt.Sprintf("# This hook was set by husk v%s: %s", version, homepage)
}

// thirdLine reads the 0-indexed line 2 of the file at path.
// ok reports whether the file has at least three lines.
func thirdLine(path string) (line string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for i := 0; i < 3; i++ {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return "", false, err
			}
			return "", false, nil
		}
	}
	return s.Text(), true, nil
}

// protected reports whether an existing file at path must not be
// replaced. A missing or unreadable file is not protected: writing is
// safe, and a real I/O problem surfaces on the write attempt. A file
// with ambiguous provenance (fewer than three lines), foreign content,
// or a marker from a different husk version is protected. Only a
// marker byte-identical to the current one allows the harmless
// identical rewrite.
func protected(path, marker string) bool {
	line, ok, err := thirdLine(path)
	if err != nil {
		return false
	}
	if !ok {
		return true
	}
	if !strings.Contains(line, markerPrefix) {
		return true
	}
	return line != marker
}
