// Package desc resolves go types into canonical conversion target descriptors:
// a kind, a container shape and an ordered list of element descriptors.
package desc
