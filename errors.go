package matl

import "errors"

var (
	// ErrBinaryMatl indicates the data is a binary numatb file, not a text document.
	ErrBinaryMatl = errors.New("binary matl")

	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrUnknownParamID indicates a parameter name or ordinal outside every family.
	ErrUnknownParamID = errors.New("unknown param id")

	// ErrUnknownFormat indicates an unsupported document format.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrEntryNotFound indicates no entry has the requested material label.
	ErrEntryNotFound = errors.New("material entry not found")

	// ErrShaderNotFound indicates no shader descriptor matches a shader label.
	ErrShaderNotFound = errors.New("shader not found")
)
