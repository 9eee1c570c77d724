package xerror_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/xerror"
)

// BenchmarkNew measures error creation, including stack capture.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.New(xerror.Config{Name: "BenchError", Message: "resource not found", Status: 404})
	}
}

func BenchmarkNew_CodeShorthand(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.New(xerror.Config{Name: "MyCustomError", Code: true})
	}
}

func BenchmarkKindNewf(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.KindInvalidInput.Newf("invalid value: %d", 42)
	}
}

func BenchmarkWrap(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.Wrap(baseErr, xerror.Config{Name: "StorageError"})
	}
}

func BenchmarkTag(b *testing.B) {
	err := xerror.New(xerror.Config{})
	tags := []string{"a", "b"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.Tag(err, tags)
	}
}

func BenchmarkAttach(b *testing.B) {
	err := xerror.New(xerror.Config{})
	data := map[string]any{"key1": "value1", "key2": 42}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.Attach(err, data)
	}
}

func BenchmarkSerialize_Chain(b *testing.B) {
	var err error = stderrors.New("root")
	for i := 0; i < 5; i++ {
		err = xerror.Wrap(err, xerror.Config{Name: "Layer"})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = xerror.Serialize(err)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := xerror.KindNotFound.New(xerror.Config{
		Message: "user not found",
		Data:    map[string]any{"id": "42"},
		Tags:    []string{"users"},
	})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}
