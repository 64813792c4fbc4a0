package codec

import (
	"encoding/binary"
	"fmt"
)

// IntToByte narrows an int to a byte, keeping the lowest 8 bits
func IntToByte(value int) byte {
	return byte(value)
}

// ByteToUnsignedInt returns byte as unsigned value
func ByteToUnsignedInt(value byte) int {
	return int(value)
}

// ShortToBytes encodes value in little endian order
func ShortToBytes(value int16) []byte {
	return binary.LittleEndian.AppendUint16(nil, uint16(value))
}

// BytesToShort decodes a little endian encoded value
func BytesToShort(data []byte) (int16, error) {
	if err := checkLength(data, 2); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(data)), nil
}

// IntToBytes encodes value in little endian order
func IntToBytes(value int32) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(value))
}

// BytesToInt decodes a little endian encoded value
func BytesToInt(data []byte) (int32, error) {
	if err := checkLength(data, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(data)), nil
}

// LongToBytes encodes value in little endian order
func LongToBytes(value int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(value))
}

// BytesToLong decodes a little endian encoded value
func BytesToLong(data []byte) (int64, error) {
	if err := checkLength(data, 8); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(data)), nil
}

func checkLength(data []byte, expect int) error {
	if len(data) < expect {
		return fmt.Errorf("expected at least %v bytes, but had: %v", expect, len(data))
	}
	return nil
}
