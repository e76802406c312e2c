// internal/dataset/fasta.go
package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ReadFASTA reads sequences whose header is
//
//	>PATIENT_ID|GENE|reference
//	>PATIENT_ID|GENE|sample
//
// Anything after the first whitespace of the header is ignored. A missing
// role means reference. Sequence lines may wrap and are upper-cased.
func ReadFASTA(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	var (
		rows   []Row
		cur    *Row
		buf    []byte
		lineNo int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		s, err := Normalize(string(buf))
		if err != nil {
			return fmt.Errorf("fasta record %s: %w", cur.PatientID, err)
		}
		cur.Sequence = s
		rows = append(rows, *cur)
		cur, buf = nil, buf[:0]
		return nil
	}

	for {
		line, err := br.ReadBytes('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		lineNo++
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 && line[0] == '>' {
			if ferr := flush(); ferr != nil {
				return nil, ferr
			}
			row, herr := parseHeader(string(line[1:]))
			if herr != nil {
				return nil, fmt.Errorf("fasta line %d: %w", lineNo, herr)
			}
			cur = &row
		} else if len(bytes.TrimSpace(line)) > 0 {
			if cur == nil {
				return nil, fmt.Errorf("fasta line %d: sequence before header", lineNo)
			}
			buf = append(buf, bytes.TrimSpace(line)...)
		}
		if eof {
			break
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseHeader(h string) (Row, error) {
	fields := strings.Fields(h)
	if len(fields) == 0 {
		return Row{}, fmt.Errorf("empty header")
	}
	parts := strings.Split(fields[0], "|")
	row := Row{PatientID: parts[0]}
	if len(parts) > 1 {
		row.GeneType = parts[1]
	}
	if len(parts) > 2 {
		switch strings.ToLower(parts[2]) {
		case "reference", "ref":
		case "sample", "mutated":
			row.IsMutated = true
		default:
			return Row{}, fmt.Errorf("unknown role %q in header %q", parts[2], fields[0])
		}
	}
	return row, nil
}

// WriteFASTA writes rows with role headers, wrapping sequence lines at width
// (0 means one line per sequence).
func WriteFASTA(w io.Writer, rows []Row, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		role := "reference"
		if r.IsMutated {
			role = "sample"
		}
		if _, err := fmt.Fprintf(bw, ">%s|%s|%s\n", r.PatientID, r.GeneType, role); err != nil {
			return err
		}
		s := r.Sequence
		for len(s) > 0 {
			n := len(s)
			if width > 0 && n > width {
				n = width
			}
			if _, err := fmt.Fprintln(bw, s[:n]); err != nil {
				return err
			}
			s = s[n:]
		}
	}
	return bw.Flush()
}
