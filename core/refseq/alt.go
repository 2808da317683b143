// core/refseq/alt.go
package refseq

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"altseed/core/fasta"
)

// ReadAltNames reads the contig names listed in an ALT file: every line not
// starting with '@' names a contig in its first whitespace-delimited field.
// Blank lines and duplicates are ignored.
func ReadAltNames(path string) ([]string, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []string
	seen := map[string]bool{}
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '@' {
			continue
		}
		f := strings.Fields(line)
		if len(f) == 0 || seen[f[0]] {
			continue
		}
		seen[f[0]] = true
		out = append(out, f[0])
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read alt list %s", path)
	}
	return out, nil
}
