package domain

import "fmt"

// BoardErrorKind classifies why a board description was rejected.
type BoardErrorKind int

const (
	BadDimensions BoardErrorKind = iota
	MalformedGrid
	OutOfBoundsClue
	DuplicateClueCoordinate
	NonContiguousClues
	TooFewClues
)

func (k BoardErrorKind) String() string {
	switch k {
	case BadDimensions:
		return "bad dimensions"
	case MalformedGrid:
		return "malformed grid"
	case OutOfBoundsClue:
		return "out-of-bounds clue"
	case DuplicateClueCoordinate:
		return "duplicate clue coordinate"
	case NonContiguousClues:
		return "non-contiguous clue numbering"
	case TooFewClues:
		return "fewer than 2 clues"
	default:
		return "invalid board"
	}
}

// InvalidBoardError is raised only at board construction or deserialization
// time. Detail pinpoints the offending cell or clue.
type InvalidBoardError struct {
	Kind   BoardErrorKind
	Detail string
}

func (e *InvalidBoardError) Error() string {
	if e.Detail == "" {
		return "invalid board: " + e.Kind.String()
	}
	return fmt.Sprintf("invalid board: %s: %s", e.Kind, e.Detail)
}

func invalidBoard(kind BoardErrorKind, format string, args ...any) error {
	return &InvalidBoardError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
