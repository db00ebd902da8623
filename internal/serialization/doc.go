// Package serialization implements the binary model-persistence format
// for the Darv ML Framework.
//
// The format is a flat little-endian stream with no header, version
// field or parameter names; shape equality against the live model is the
// only integrity check:
//
//	param_count:uint64
//	per parameter, in registration order:
//	    shape_len:uint64
//	    shape[shape_len]:uint64
//	    data_len:uint64
//	    data[data_len]:float64
//
// Loading is all-or-nothing: every record is decoded and validated
// against the live parameter list before any parameter is mutated, so a
// count or shape mismatch leaves the model untouched.
package serialization
