package csb58

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	fw "github.com/cleared-dev/csb58/internal/fixedwidth"
)

// Decoded is one record split back into its fields.
type Decoded struct {
	Kind   Kind
	Layout fw.Layout
	Fields map[string]string
}

// Decode splits a document into records and decodes each by its
// record/data code. Both newline-separated and bare concatenated
// documents are accepted.
func Decode(doc []byte) ([]Decoded, error) {
	lines, err := splitRecords(doc)
	if err != nil {
		return nil, err
	}
	out := make([]Decoded, 0, len(lines))
	for i, line := range lines {
		if len(line) < 4 {
			return nil, fmt.Errorf("record %d: too short", i+1)
		}
		k := Kind{RecordCode: line[0:2], DataCode: line[2:4]}
		l, ok := LayoutFor(k)
		if !ok {
			return nil, fmt.Errorf("record %d: unknown record code %s", i+1, k)
		}
		fields, err := l.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, Decoded{Kind: k, Layout: l, Fields: fields})
	}
	return out, nil
}

func splitRecords(doc []byte) ([]string, error) {
	if !bytes.ContainsAny(doc, "\r\n") {
		if len(doc)%RecordLen != 0 {
			return nil, fmt.Errorf("document length %d is not a multiple of %d", len(doc), RecordLen)
		}
		var lines []string
		for i := 0; i < len(doc); i += RecordLen {
			lines = append(lines, string(doc[i:i+RecordLen]))
		}
		return lines, nil
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(doc))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}
	return lines, nil
}
