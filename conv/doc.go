// Package conv implements type directed value conversion.
// A Registry resolves a Converter for a target type descriptor, exact go type registrations first,
// then kind overrides, registered enums and built-in category converters.
// A Session carries registry and options through nested element conversions.
package conv
