// Package colorspace represents a single color value and converts it between
// several representations: 24-bit packed integer, hexadecimal string, RGB
// triple, HSV (a float-accurate and an integer-fast variant), and CIE
// XYZ/Lab. It also computes color distances and finds the nearest match to a
// candidate color within a palette.
//
// # Color Representation
//
// A Color wraps one packed integer. The low 24 bits encode red (bits 16-23),
// green (bits 8-15), and blue (bits 0-7). There is no alpha channel. Ordinary
// colors occupy [0, 0xFFFFFF]; the Transparent sentinel is 0x7FFFFFFF.
//
// Every derived representation (hex, RGB, HSV, XYZ, Lab) is a pure function
// of the stored integer. Nothing is cached, so derived values can never go
// stale.
//
// # Construction
//
// The From* constructors never fail: malformed or out-of-range input is
// silently coerced exactly the way bitwise packing and base-16 parsing
// behave. Callers that need input validation use the New* factories instead,
// which reject non-integer arguments with ErrInvalidInput.
//
// # Error Handling
//
// NewFromInt and NewFromRGB are the only fallible operations in the package.
// Everything else is total and returns a value for any input.
//
// # Thread Safety
//
// Color is an immutable value type and all operations are pure computation
// over it. Any method may be called concurrently from multiple goroutines
// without coordination.
package colorspace
