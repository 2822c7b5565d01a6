// Package persist writes finished constructions to text files and reads them
// back.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/metrics"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
)

// FilePrefix starts every saved file name.
const FilePrefix = "final_adj_matrix_"

// Label is a trailing "name = value" line in a saved file.
type Label struct {
	Name  string
	Value any
}

// Saver writes constructions into Dir. The zero value writes to the working
// directory without logging or metrics.
type Saver struct {
	Dir     string
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Encode renders the saved-file body: the coloring's canonical text, a newline,
// then "\n<name> = <value>" for each label in order.
func Encode(m coloring.Matrix, labels []Label) []byte {
	var buf bytes.Buffer
	m.WriteTo(&buf)
	buf.WriteByte('\n')
	for _, l := range labels {
		fmt.Fprintf(&buf, "\n%s = %v", l.Name, l.Value)
	}
	return buf.Bytes()
}

// FileName returns the name a construction is saved under. The trailing id is
// a name-based UUID of the file body, so the same construction with the same
// labels always maps to the same file.
func FileName(kind ramsey.Kind, sizes []int, n int, body []byte) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	id := uuid.NewSHA1(uuid.NameSpaceOID, body)
	return fmt.Sprintf("%s%s_%s_%dvertices_%s.txt", FilePrefix, kind, strings.Join(parts, "-"), n, id)
}

// Save writes the construction and reports whether a new file was created.
// A file that already exists is left untouched and is not an error.
func (s *Saver) Save(m coloring.Matrix, kind ramsey.Kind, sizes []int, labels ...Label) (string, bool, error) {
	body := Encode(m, labels)
	path := filepath.Join(s.Dir, FileName(kind, sizes, m.Size(), body))

	created, err := writeExclusive(path, body)
	switch {
	case err != nil:
		s.record(metricsResultError)
		s.logger().Error("save failed", logging.Path(path), logging.Error(err))
		return path, false, fmt.Errorf("save %s: %w", path, err)
	case !created:
		s.record(metricsResultExists)
		s.logger().Debug("construction already saved", logging.Path(path))
	default:
		s.record(metricsResultWritten)
		s.logger().Info("construction saved", logging.Path(path), logging.Vertices(m.Size()), logging.Sizes(sizes))
	}
	return path, created, nil
}

// Save writes into dir with a zero Saver.
func Save(dir string, m coloring.Matrix, kind ramsey.Kind, sizes []int, labels ...Label) (string, bool, error) {
	s := Saver{Dir: dir}
	return s.Save(m, kind, sizes, labels...)
}

// Load reads a saved file back into a coloring, ignoring its label lines.
func Load(path string) (coloring.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := coloring.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

const (
	metricsResultWritten = "written"
	metricsResultExists  = "exists"
	metricsResultError   = "error"
)

func writeExclusive(path string, body []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return true, err
	}
	return true, f.Close()
}

func (s *Saver) record(result string) {
	if s.Metrics != nil {
		s.Metrics.RecordSave(result)
	}
}

func (s *Saver) logger() logging.Logger {
	if s.Logger == nil {
		return logging.NewNopLogger()
	}
	return s.Logger
}
