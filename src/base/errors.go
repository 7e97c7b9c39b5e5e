package base

import "errors"

var (
	ErrMalformedInput          = errors.New("malformed input")
	ErrUnrecognizedPieceSymbol = errors.New("unrecognized piece symbol")
	ErrIndexOutOfRange         = errors.New("index out of range")
)
