package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Version is the hex SHA-256 of the raw dataset bytes.
func Version(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ParseCSV reads a CSV document with a header row. Width checks are left to
// the normalizer so it can report the offending row.
func ParseCSV(origin string, data []byte) (schema.RawTable, error) {
	body := bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return schema.RawTable{}, &schema.MalformedInputError{Reason: "dataset " + origin + " is empty"}
	}
	if err != nil {
		return schema.RawTable{}, &schema.MalformedInputError{
			Reason: "read header",
			Err:    crerr.Wrapf(err, "parse csv %s", origin),
		}
	}

	rows := make([][]string, 0, 512)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.RawTable{}, &schema.MalformedInputError{
				Row:    len(rows) + 1,
				Reason: "invalid csv",
				Err:    crerr.Wrapf(err, "parse csv %s", origin),
			}
		}
		rows = append(rows, record)
	}

	return schema.RawTable{
		Version: Version(data),
		Origin:  origin,
		Header:  header,
		Rows:    rows,
	}, nil
}
