package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// maxLineSize bounds a single tab row; aligned strings can be long.
const maxLineSize = 64 * 1024 * 1024

// ConvertTabToSAM reads tab rows from r and writes SAM to w. Header rows and
// blank lines are skipped. The SAM header is written only when refs is not
// empty. It returns the number of records written.
func ConvertTabToSAM(r io.Reader, w io.Writer, refs []sequence.Sequence) (int, error) {
	bw := bufio.NewWriter(w)
	if len(refs) > 0 {
		for _, line := range HeaderLines(refs) {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return 0, err
			}
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || IsTabHeader(line) {
			continue
		}

		rec, err := ParseTab(line)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sam, err := ToSAM(rec)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintln(bw, sam); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}
