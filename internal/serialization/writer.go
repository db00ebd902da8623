package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/darv-ml/darv/internal/tensor"
)

// Write serializes the parameter tensors to w in registration order.
func Write(w io.Writer, params []*tensor.Tensor) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(params))); err != nil {
		return fmt.Errorf("failed to write parameter count: %w", err)
	}

	for i, param := range params {
		if err := writeParam(w, param); err != nil {
			return fmt.Errorf("failed to write parameter %d: %w", i, err)
		}
	}
	return nil
}

// writeParam writes one parameter record: shape length, shape dimensions,
// data length, raw float64 values.
func writeParam(w io.Writer, param *tensor.Tensor) error {
	shape := param.Shape()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(shape))); err != nil {
		return fmt.Errorf("shape length: %w", err)
	}
	for _, dim := range shape {
		if err := binary.Write(w, binary.LittleEndian, uint64(dim)); err != nil {
			return fmt.Errorf("shape dimension: %w", err)
		}
	}

	data := param.Data()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(data))); err != nil {
		return fmt.Errorf("data length: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("data values: %w", err)
	}
	return nil
}

// Save writes the parameter tensors to a file at path, creating or
// truncating it.
func Save(path string, params []*tensor.Tensor) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	if err := Write(file, params); err != nil {
		return err
	}
	return file.Sync()
}
