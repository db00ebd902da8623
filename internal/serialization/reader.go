package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/darv-ml/darv/internal/tensor"
)

// Read deserializes parameter values from r into the given live
// parameter tensors.
//
// Every stored record is decoded and validated against the corresponding
// live parameter before any parameter is mutated; on any mismatch the
// model is left untouched and a wrapped ErrParamCount, ErrShapeMismatch
// or ErrSizeMismatch is returned.
func Read(r io.Reader, params []*tensor.Tensor) error {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("failed to read parameter count: %w", err)
	}
	if count != uint64(len(params)) {
		return fmt.Errorf("%w: file has %d, model has %d", ErrParamCount, count, len(params))
	}

	// Stage every record first; apply only after the whole file checks out.
	staged := make([][]float64, len(params))
	for i, param := range params {
		data, err := readParam(r, param.Shape())
		if err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
		staged[i] = data
	}

	for i, param := range params {
		copy(param.Data(), staged[i])
	}
	return nil
}

// readParam reads one parameter record and validates it against the
// expected live shape.
func readParam(r io.Reader, want tensor.Shape) ([]float64, error) {
	var shapeLen uint64
	if err := binary.Read(r, binary.LittleEndian, &shapeLen); err != nil {
		return nil, fmt.Errorf("shape length: %w", err)
	}

	shape := make(tensor.Shape, shapeLen)
	for d := range shape {
		var dim uint64
		if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
			return nil, fmt.Errorf("shape dimension %d: %w", d, err)
		}
		shape[d] = int(dim)
	}
	if !shape.Equal(want) {
		return nil, fmt.Errorf("%w: file has %v, model has %v", ErrShapeMismatch, shape, want)
	}

	var dataLen uint64
	if err := binary.Read(r, binary.LittleEndian, &dataLen); err != nil {
		return nil, fmt.Errorf("data length: %w", err)
	}
	if dataLen != uint64(shape.NumElements()) {
		return nil, fmt.Errorf("%w: shape %v implies %d values, file has %d",
			ErrSizeMismatch, shape, shape.NumElements(), dataLen)
	}

	data := make([]float64, dataLen)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("data values: %w", err)
	}
	return data, nil
}

// Load reads parameter values from the file at path into the given live
// parameter tensors.
func Load(path string, params []*tensor.Tensor) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	return Read(file, params)
}
