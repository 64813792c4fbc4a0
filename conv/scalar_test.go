package conv

import (
	"errors"
	"math/big"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

type scalarCase struct {
	description string
	target      *desc.Type
	source      interface{}
	options     []RegistryOption
	expect      interface{}
	hasError    bool
}

func runScalarCases(t *testing.T, testCases []scalarCase) {
	for _, testCase := range testCases {
		actual, err := convert(testCase.source, testCase.target, testCase.options...)
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrSourceParseFailure), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvertBoolean(t *testing.T) {
	target := desc.Of[bool]()
	runScalarCases(t, []scalarCase{
		{description: "bool", target: target, source: true, expect: true},
		{description: "yes", target: target, source: "yes", expect: true},
		{description: "upper case off", target: target, source: " OFF ", expect: false},
		{description: "y", target: target, source: "Y", expect: true},
		{description: "chinese yes", target: target, source: "是", expect: true},
		{description: "chinese false", target: target, source: "假", expect: false},
		{description: "numeric text", target: target, source: "1.5", expect: true},
		{description: "zero text", target: target, source: "0.0", expect: false},
		{description: "int", target: target, source: 2, expect: true},
		{description: "zero float", target: target, source: 0.0, expect: false},
		{description: "pointer target", target: desc.Of[*bool](), source: "on", expect: ptrOf(true)},
		{description: "invalid", target: target, source: "maybe", hasError: true},
		{description: "empty", target: target, source: "", hasError: true},
	})
}

func TestConvertCharacter(t *testing.T) {
	runScalarCases(t, []scalarCase{
		{description: "first rune", target: desc.Rune, source: "abc", expect: 'a'},
		{description: "multi byte rune", target: desc.Rune, source: "中文", expect: '中'},
		{description: "code point", target: desc.Rune, source: 65, expect: 'A'},
		{description: "true", target: desc.Rune, source: true, expect: '1'},
		{description: "false", target: desc.Rune, source: false, expect: '0'},
		{description: "empty", target: desc.Rune, source: "", hasError: true},
		{description: "negative", target: desc.Rune, source: -1, hasError: true},
	})
}

func TestConvertString(t *testing.T) {
	ts := time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)
	target := desc.Of[string]()
	runScalarCases(t, []scalarCase{
		{description: "string", target: target, source: "hello", expect: "hello"},
		{description: "int", target: target, source: 123, expect: "123"},
		{description: "uint", target: target, source: uint8(200), expect: "200"},
		{description: "float", target: target, source: 123.456, expect: "123.456"},
		{description: "float32", target: target, source: float32(0.25), expect: "0.25"},
		{description: "large float", target: target, source: 1e21, expect: "1000000000000000000000"},
		{description: "bool", target: target, source: false, expect: "false"},
		{description: "bytes", target: target, source: []byte("hello"), expect: "hello"},
		{description: "time", target: target, source: ts, expect: "2023-01-15 12:30:45.000"},
		{description: "big int", target: target, source: big.NewInt(5), expect: "5"},
		{description: "big float", target: target, source: big.NewFloat(1.5), expect: "1.5"},
		{description: "stringer", target: target, source: time.Second, expect: "1s"},
		{description: "error", target: target, source: errors.New("boom"), expect: "boom"},
		{description: "slice", target: target, source: []int{1, 2, 3}, expect: "1,2,3"},
		{description: "numeral text", target: target, source: numeral.Chinese("一百"), expect: "一百"},
		{description: "struct", target: target, source: struct{ A int }{A: 1}, expect: "{1}"},
		{description: "pointer target", target: desc.Of[*string](), source: 1, expect: ptrOf("1")},
	})
}

func TestConvertTemporal(t *testing.T) {
	ts := time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)
	day := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		description string
		source      interface{}
		expect      time.Time
		hasError    bool
	}{
		{description: "RFC3339", source: "2023-01-15T12:30:45Z", expect: ts},
		{description: "default layout", source: "2023-01-15 12:30:45.000", expect: ts},
		{description: "date", source: "2023-01-15", expect: day},
		{description: "compact date", source: "20230115", expect: day},
		{description: "chinese date", source: "2023年01月15日", expect: day},
		{description: "epoch millis", source: ts.UnixMilli(), expect: ts},
		{description: "epoch millis text", source: "1673785845000", expect: ts},
		{description: "compact date time text", source: "20230115123045", expect: ts},
		{description: "compact date text", source: "20230115", expect: day},
		{description: "time", source: ts, expect: ts},
		{description: "time pointer", source: &ts, expect: ts},
		{description: "garbage", source: "garbage", hasError: true},
		{description: "empty", source: "", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := convert(testCase.source, desc.Of[time.Time]())
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrSourceParseFailure), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(actual.(time.Time)), testCase.description)
	}
}

func TestConvertTemporal_Location(t *testing.T) {
	options := DefaultOptions()
	options.Location = "Asia/Shanghai"
	actual, err := convert("2023-01-15", desc.Of[*time.Time](), WithOptions(options))
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, time.Date(2023, 1, 14, 16, 0, 0, 0, time.UTC), actual.(*time.Time).UTC())
}

func TestConvertDuration(t *testing.T) {
	target := desc.Of[time.Duration]()
	runScalarCases(t, []scalarCase{
		{description: "text", target: target, source: "1m30s", expect: 90 * time.Second},
		{description: "nanos", target: target, source: int64(5), expect: time.Duration(5)},
		{description: "numeric text", target: target, source: "1500", expect: time.Duration(1500)},
		{description: "duration", target: target, source: time.Second, expect: time.Second},
		{description: "pointer target", target: desc.Of[*time.Duration](), source: "2s", expect: ptrOf(2 * time.Second)},
		{description: "invalid", target: target, source: "abc", hasError: true},
	})
}
