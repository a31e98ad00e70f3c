package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/clipfit/pkg/geometry"
)

const (
	headerSize = 80
	recordSize = 50
)

// record is the fixed little-endian layout of one binary facet
type record struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// Parse reads a binary STL file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w: %w", ErrResourceUnavailable, err)
	}
	defer file.Close()

	return Decode(bufio.NewReader(file))
}

// Decode reads a binary STL stream. The header and every stored normal and
// attribute are discarded.
//
// A stream that ends before the facet count yields an empty model and
// ErrTruncatedHeader. A short record yields the facets read so far and a
// *MalformedRecordError.
func Decode(reader io.Reader) (*Model, error) {
	model := NewModel()

	var header [headerSize]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return model, headerError(err)
	}

	var facetCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &facetCount); err != nil {
		return model, headerError(err)
	}

	for i := uint32(0); i < facetCount; i++ {
		var rec record
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return model, &MalformedRecordError{Index: i, Expected: facetCount, Err: err}
		}
		model.AddFacet(rec.facet())
	}

	return model, nil
}

func headerError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedHeader
	}
	return fmt.Errorf("failed to read header: %w", err)
}

func (r *record) facet() Facet {
	var facet Facet
	for i, v := range r.Vertices {
		facet.Points[i] = geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
	}
	return facet
}
