package codec

import (
	"encoding/hex"
	"fmt"
)

// Hex represents lowercase hexadecimal text, two characters per byte
type Hex string

// Bytes decodes hex text
func (h Hex) Bytes() ([]byte, error) {
	return DecodeHex(string(h))
}

// EncodeHex encodes data as lowercase hex text
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes hex text, upper case digits are accepted
func DecodeHex(text string) ([]byte, error) {
	ret, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", text, err)
	}
	return ret, nil
}

// ToHex encodes text in the charset and returns its hex form
func ToHex(text, charset string) (string, error) {
	data, err := Encode(text, charset)
	if err != nil {
		return "", err
	}
	return EncodeHex(data), nil
}

// HexToString decodes hex text and the resulting bytes in the charset
func HexToString(text, charset string) (string, error) {
	data, err := DecodeHex(text)
	if err != nil {
		return "", err
	}
	return Decode(data, charset)
}
