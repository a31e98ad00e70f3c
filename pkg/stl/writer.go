package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Attribute values written into the otherwise unused two bytes of each
// record, as packed 5-6-5 RGB. They are advisory only.
const (
	// ColorHighlight renders red and marks modified facets
	ColorHighlight uint16 = 63489
	// ColorNeutral renders blue and marks untouched facets
	ColorNeutral uint16 = 14185
)

// Encode writes the model as binary STL: a zeroed header, the facet count,
// then one record per facet with a freshly computed normal.
func Encode(writer io.Writer, model *Model) error {
	var header [headerSize]byte
	if _, err := writer.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(writer, binary.LittleEndian, uint32(model.FacetCount())); err != nil {
		return fmt.Errorf("failed to write facet count: %w", err)
	}

	for i, facet := range model.Facets {
		rec := newRecord(facet)
		if err := binary.Write(writer, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}

	return nil
}

// WriteFile encodes the model into a new file, replacing any existing one
func WriteFile(filename string, model *Model) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w: %w", ErrResourceUnavailable, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w: %w", ErrResourceUnavailable, cerr)
		}
	}()

	buffered := bufio.NewWriter(file)
	if err := Encode(buffered, model); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w: %w", ErrResourceUnavailable, err)
	}
	return nil
}

// AttributeFor returns the attribute color written for a facet
func AttributeFor(facet Facet) uint16 {
	if facet.Modified {
		return ColorHighlight
	}
	return ColorNeutral
}

func newRecord(facet Facet) record {
	rec := record{Attribute: AttributeFor(facet)}
	normal := facet.Normal()
	for axis := range rec.Normal {
		rec.Normal[axis] = float32(normal[axis])
	}
	for i, point := range facet.Points {
		for axis := range point {
			rec.Vertices[i][axis] = float32(point[axis])
		}
	}
	return rec
}
