// Package kernel contains the shared value objects of the packing domain:
// entity identifiers, linear dimensions, and box weights.
//
// All types in this package are immutable value objects. Zero values are
// invalid and fail Validate; instances must be created through the provided
// constructor functions, which enforce the domain's precision rules:
// dimensions carry at most three fractional digits, and weights keep the
// operator-entered value alongside a ceiling-rounded effective value used
// for every limit comparison.
package kernel
