// Package uploadparser turns the raw content of a bulk upload file into an
// ordered sequence of field mappings. It is a pure package: no I/O, no
// persistence, a single full pass over the content.
package uploadparser

import (
	"fmt"
	"strings"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/pure_utils"

	"github.com/cockroachdb/errors"
)

// Row is one data row of the file. Number is 1-based over data rows: the
// header does not count, and blank lines do not consume a number.
type Row struct {
	Number int
	Fields map[string]string
	// ColumnCountMismatch is set when the row's token count differs from the
	// header's. The row is still emitted so numbering stays continuous, and
	// validation fails it with a dedicated message.
	ColumnCountMismatch bool
}

type ParsedFile struct {
	Header []string
	Rows   []Row
}

// sniffDelimiter picks the delimiter from the header line: tab when the
// header contains one, pipe otherwise.
func sniffDelimiter(headerLine string) string {
	if strings.Contains(headerLine, "\t") {
		return "\t"
	}
	return "|"
}

// Parse reads the whole file content. The first line is the header (tokens
// trimmed, case-sensitive); every following non-blank line becomes a Row.
// An empty file or a blank header is a parse error.
func Parse(content string) (ParsedFile, error) {
	content = pure_utils.TrimBom(content)
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return ParsedFile{}, errors.Wrap(models.ErrUnparsableUploadFile, "file is empty")
	}

	delimiter := sniffDelimiter(lines[headerIdx])
	header := make([]string, 0)
	for _, token := range strings.Split(lines[headerIdx], delimiter) {
		token = strings.TrimSpace(token)
		if token == "" {
			return ParsedFile{}, errors.Wrap(models.ErrUnparsableUploadFile, "header contains a blank field name")
		}
		header = append(header, token)
	}

	rows := make([]Row, 0, len(lines)-headerIdx-1)
	rowNumber := 0
	for _, line := range lines[headerIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rowNumber++

		values := strings.Split(line, delimiter)
		row := Row{
			Number:              rowNumber,
			Fields:              make(map[string]string, len(header)),
			ColumnCountMismatch: len(values) != len(header),
		}
		for i, value := range values {
			value = strings.TrimSpace(value)
			if i < len(header) {
				row.Fields[header[i]] = value
			} else {
				// surplus tokens keep a positional key so the stored raw row
				// still shows everything the line carried
				row.Fields[fmt.Sprintf("column_%d", i+1)] = value
			}
		}
		rows = append(rows, row)
	}

	return ParsedFile{Header: header, Rows: rows}, nil
}
