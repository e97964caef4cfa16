package dataset

import (
	"context"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
)

// FileSource reads a dataset from the local filesystem on every Fetch.
type FileSource struct {
	path     string
	maxBytes int64
}

func NewFileSource(path string, maxBytes int) *FileSource {
	return &FileSource{path: path, maxBytes: int64(maxBytes)}
}

func (s *FileSource) String() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) (schema.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return schema.RawTable{}, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return schema.RawTable{}, crerr.Wrapf(err, "stat dataset %s", s.path)
	}
	if s.maxBytes > 0 && info.Size() > s.maxBytes {
		return schema.RawTable{}, crerr.Newf("dataset %s is %d bytes, limit is %d", s.path, info.Size(), s.maxBytes)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return schema.RawTable{}, crerr.Wrapf(err, "read dataset %s", s.path)
	}
	return ParseCSV(s.path, data)
}
