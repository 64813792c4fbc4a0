// Package codec provides text and byte level codecs: hex, character sets,
// full and half width forms, unicode escapes and little endian byte order.
package codec
