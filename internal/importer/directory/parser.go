package directory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	enc "github.com/MrJamesThe3rd/tempo/internal/encoding"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// Parser reads client directory CSV exports in any common encoding. The delimiter
// (comma or semicolon) is sniffed from the first line and the column layout is matched
// against known header profiles; a file without a recognised header is read as
// label,address,phone.
type Parser struct {
	headerless bool
}

func NewParser() *Parser {
	return &Parser{}
}

// NewPositionalParser returns a parser that never looks for a header row.
func NewPositionalParser() *Parser {
	return &Parser{headerless: true}
}

func (p *Parser) Parse(r io.Reader) ([]invoice.Client, error) {
	utf8r, charset, err := enc.Detect(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, start := &positional, colIndex{}, 0
	if !p.headerless && len(rows) > 0 {
		if matched, matchedCols := detectProfile(rows[0]); matched != nil {
			profile, cols, start = matched, matchedCols, 1
		}
	}

	slog.Debug("parsing client directory", "charset", charset, "profile", profile.Name, "rows", len(rows)-start)

	return parseRows(profile, cols, rows[start:]), nil
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

func detectProfile(header []string) (*Profile, colIndex) {
	cols := make(colIndex)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for i := range profiles {
		if _, ok := cols[strings.ToLower(profiles[i].LabelCol)]; ok {
			return &profiles[i], cols
		}
	}

	return nil, nil
}

func parseRows(p *Profile, cols colIndex, rows [][]string) []invoice.Client {
	labelIdx, addressIdx, phoneIdx := 0, 1, 2
	if p != &positional {
		labelIdx = lookup(cols, p.LabelCol)
		addressIdx = lookup(cols, p.AddressCol)
		phoneIdx = lookup(cols, p.PhoneCol)
	}

	var clients []invoice.Client

	for _, row := range rows {
		label := cellValue(row, labelIdx)
		if label == "" {
			continue
		}

		clients = append(clients, invoice.Client{
			Label:   label,
			Address: cellValue(row, addressIdx),
			Phone:   cellValue(row, phoneIdx),
		})
	}

	return clients
}

func lookup(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	if idx, ok := cols[strings.ToLower(name)]; ok {
		return idx
	}

	return -1
}

// sniffDelimiter picks ';' when the first line has more semicolons than commas.
func sniffDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}

	return ','
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
