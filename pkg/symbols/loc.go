package symbols

import "fmt"

// Loc is a byte range within a source file.
type Loc struct {
	File  string
	Start uint32
	End   uint32
}

// NewLoc constructs a new Loc.
func NewLoc(file string, start, end uint32) Loc {
	return Loc{File: file, Start: start, End: end}
}

// Contains reports whether other lies entirely within this location.  A
// zero-width location positioned at End is contained.
func (l Loc) Contains(other Loc) bool {
	return l.File == other.File && l.Start <= other.Start && other.End <= l.End
}

// String implements fmt.Stringer
func (l Loc) String() string {
	return fmt.Sprintf("%s:%d-%d", l.File, l.Start, l.End)
}
