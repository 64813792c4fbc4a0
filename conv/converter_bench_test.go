package conv

import (
	"reflect"
	"testing"
	"time"

	"github.com/viant/xconv/desc"
)

type benchStruct struct {
	Name       string
	Age        int
	Active     bool
	Score      float64
	DateJoined time.Time
}

func BenchmarkSession_MapToStruct(b *testing.B) {
	session := NewSession(NewRegistry(), false)
	target := desc.Of[benchStruct]()
	src := map[string]interface{}{
		"Name":       "Jane",
		"Age":        42,
		"Active":     true,
		"Score":      99.5,
		"DateJoined": "2023-01-15T12:30:45Z",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := session.Convert(src, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSession_SliceMapToSliceStruct(b *testing.B) {
	session := NewSession(NewRegistry(), false)
	target := desc.Of[[]benchStruct]()
	one := map[string]interface{}{
		"Name":       "Jane",
		"Age":        42,
		"Active":     true,
		"Score":      99.5,
		"DateJoined": "2023-01-15T12:30:45Z",
	}
	src := make([]interface{}, 256)
	for i := range src {
		src[i] = one
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst, err := session.Convert(src, target)
		if err != nil {
			b.Fatal(err)
		}
		_ = reflect.ValueOf(dst).Len()
	}
}

func BenchmarkSession_TextToInts(b *testing.B) {
	session := NewSession(NewRegistry(), false)
	target := desc.Of[[]int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := session.Convert("1,2,3,4,5,6,7,8", target); err != nil {
			b.Fatal(err)
		}
	}
}
