package tst

import "fmt"

// InvalidKeyError is returned when a key is not a well-formed sequence
// of Unicode code points, i.e. not valid UTF-8.
type InvalidKeyError struct{ Key string }

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("tst: invalid key %q: not valid UTF-8", e.Key)
}

// EmptyKeyError is returned when a zero-length key is supplied to an
// operation that requires at least one code point.
type EmptyKeyError struct{}

func (e EmptyKeyError) Error() string { return "tst: empty key" }
