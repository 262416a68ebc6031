// Package order models the immutable order snapshot that packing sessions
// work against. An Order and its OrderLines are captured once, when the order
// is first imported from the sales system, and are never mutated afterwards:
// every packed quantity is validated against the ordered quantities frozen
// here. Re-import of a changed order is out of scope for the packing core.
package order
