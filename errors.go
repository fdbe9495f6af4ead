package slysheets

import "errors"

var (
	ErrInvalidNotation            = errors.New("invalid A1 notation")
	ErrInvalidIndex               = errors.New("invalid index")
	ErrInvalidColumn              = errors.New("invalid column")
	ErrInvalidKey                 = errors.New("invalid key")
	ErrUnsupportedStep            = errors.New("unsupported step")
	ErrUnsupportedOpenColumnRange = errors.New("open-ended column range not supported")
	ErrAmbiguousPage              = errors.New("ambiguous page")
	ErrUnresolvedPage             = errors.New("page not specified")
	ErrUnknownHeader              = errors.New("unknown header")
	ErrUnknownColumn              = errors.New("unknown column")
	ErrUnknownPage                = errors.New("unknown page")
	ErrIndexOutOfRange            = errors.New("index out of range")
)
