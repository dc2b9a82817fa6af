package transfer

import "errors"

var (
	ErrMalformedJSON  = errors.New("malformed import JSON")
	ErrEmptyImport    = errors.New("import content is empty")
	ErrNotImplemented = errors.New("importer not implemented")
	ErrUnknownType    = errors.New("unknown import type")
)
