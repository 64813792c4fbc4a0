package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is used when charset name is empty
const DefaultCharset = "utf-8"

// Lookup returns encoding for IANA or HTML charset name
func Lookup(charset string) (encoding.Encoding, error) {
	if charset = strings.TrimSpace(charset); charset == "" {
		charset = DefaultCharset
	}
	ret, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return ret, nil
}

// Encode encodes text with the charset
func Encode(text, charset string) ([]byte, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	ret, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text as %v: %w", charset, err)
	}
	return ret, nil
}

// Decode decodes data with the charset
func Decode(data []byte, charset string) (string, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return "", err
	}
	ret, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %v data: %w", charset, err)
	}
	return string(ret), nil
}

// ConvertCharset encodes text with the source charset and reads the bytes back with the destination charset
func ConvertCharset(text, sourceCharset, destCharset string) (string, error) {
	if text == "" || strings.EqualFold(sourceCharset, destCharset) {
		return text, nil
	}
	data, err := Encode(text, sourceCharset)
	if err != nil {
		return "", err
	}
	return Decode(data, destCharset)
}
