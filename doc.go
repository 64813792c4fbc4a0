// Package xconv converts values between go types.
//
// Convert fails with a typed *conv.Error, ConvertQuietly returns the supplied default instead.
// Typed shortcuts such as ToInt, ToStr or ToList bind a target type to either path:
//
//	number := xconv.ToInt("42", -1)
//	ids, err := xconv.ToList[int64]("1,2,3")
//
// Package level functions use a process wide converter, New creates an isolated one.
package xconv
