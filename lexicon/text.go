package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadFile reads the plain text format from path.
//
// A line starting with a non-blank character opens a lexeme and names its
// lemma: "робити verb:imperf:inf". Indented lines add forms to the current
// lexeme: "  роблю verb:imperf:pres:s:1". Blank lines and lines starting
// with '#' are skipped.
//
// The file is memory-mapped for the duration of the parse.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		// mmap refuses empty files.
		return New(), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	l, err := Read(bytes.NewReader(m))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Read parses the plain text format from r.
func Read(r io.Reader) (*Lexicon, error) {
	l := New()
	var cur Lexeme
	flush := func() {
		if len(cur) > 0 {
			l.Add(cur)
		}
		cur = nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: %q", n, ErrMalformedLine, line)
		}
		form := Form{Form: fields[0], Flags: fields[1]}

		indented := line[0] == ' ' || line[0] == '\t'
		if !indented {
			flush()
			cur = Lexeme{form}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("line %d: %w: form outside of a lexeme", n, ErrMalformedLine)
		}
		cur = append(cur, form)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return l, nil
}

// Write renders l in the plain text format.
func Write(w io.Writer, l *Lexicon) error {
	bw := bufio.NewWriter(w)
	for _, x := range l.Lexemes() {
		for i, f := range x {
			indent := ""
			if i > 0 {
				indent = "  "
			}
			if _, err := fmt.Fprintf(bw, "%s%s %s\n", indent, f.Form, f.Flags); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
