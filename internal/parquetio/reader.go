package parquetio

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Reader streams rows of type T out of a Parquet file. It is the read-side
// counterpart of Writer.
type Reader[T any] struct {
	path   string
	file   *os.File
	reader *parquet.GenericReader[T]
}

// Open opens path for streaming reads of T.
func Open[T any](path string) (*Reader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s is not a parquet file: %w", path, err)
	}
	return &Reader[T]{path: path, file: f, reader: parquet.NewGenericReader[T](pf)}, nil
}

// NumRows returns the row count recorded in the file footer.
func (r *Reader[T]) NumRows() int64 {
	return r.reader.NumRows()
}

// Schema returns the file schema.
func (r *Reader[T]) Schema() *parquet.Schema {
	return r.reader.Schema()
}

// Read fills rows and returns how many were read. io.EOF is returned
// unwrapped, possibly together with a final partial batch.
func (r *Reader[T]) Read(rows []T) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read %s: %w", r.path, err)
	}
	return n, err
}

// ReadAll drains the remaining rows. Meant for small files such as batch
// results and fixtures.
func (r *Reader[T]) ReadAll() ([]T, error) {
	rows := make([]T, 0, r.NumRows())
	buf := make([]T, 256)
	for {
		n, err := r.Read(buf)
		rows = append(rows, buf[:n]...)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
	}
}

// Close closes the reader and the underlying file.
func (r *Reader[T]) Close() error {
	readErr := r.reader.Close()
	fileErr := r.file.Close()
	if readErr != nil {
		return fmt.Errorf("close parquet reader: %w", readErr)
	}
	return fileErr
}
