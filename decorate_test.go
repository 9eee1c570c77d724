package xerror

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type namedErr struct {
	name string
	msg  string
}

func (e namedErr) Error() string   { return e.name + ": " + e.msg }
func (e namedErr) Name() string    { return e.name }
func (e namedErr) Message() string { return e.msg }

func TestTag_Appends(t *testing.T) {
	err := New(Config{Name: "X"})

	out := Tag(err, []string{"b"})
	out = Tag(out, []string{"c"})

	require.True(t, out == error(err))
	require.Equal(t, []string{"b", "c"}, err.Tags())
}

func TestTag_AppendsToConstructorTags(t *testing.T) {
	err := New(Config{Tags: []string{"a"}})
	Tag(err, []string{"b", "a"})

	require.Equal(t, []string{"a", "b", "a"}, err.Tags())
}

func TestTag_FiltersOversized(t *testing.T) {
	err := New(Config{})
	Tag(err, []string{"ok", strings.Repeat("x", 129)})

	require.Equal(t, []string{"ok"}, err.Tags())
}

func TestTag_EmptySliceInitializes(t *testing.T) {
	err := New(Config{})
	Tag(err, []string{})

	require.NotNil(t, err.Tags())
	require.Empty(t, err.Tags())
}

func TestTag_NoOp(t *testing.T) {
	err := New(Config{})

	require.True(t, Tag(err, nil) == error(err))
	require.Nil(t, err.Tags())
	require.Nil(t, Tag(nil, []string{"a"}))
}

func TestTag_WrappedError(t *testing.T) {
	inner := New(Config{Name: "Inner"})
	wrapped := fmt.Errorf("context: %w", inner)

	out := Tag(wrapped, []string{"db"})

	require.True(t, out == wrapped)
	require.Equal(t, []string{"db"}, inner.Tags())
}

func TestTag_PromotesPlainError(t *testing.T) {
	plain := stderrors.New("boom")

	out := Tag(plain, []string{"db"})

	require.True(t, Isa(out))
	promoted := out.(*Error)
	require.Equal(t, "Error", promoted.Name())
	require.Equal(t, "boom", promoted.Message())
	require.Equal(t, plain, promoted.Cause())
	require.Equal(t, []string{"db"}, promoted.Tags())
}

func TestTag_PromotesNamedError(t *testing.T) {
	out := Tag(namedErr{name: "RemoteError", msg: "upstream failed"}, []string{"remote"})

	promoted := out.(*Error)
	require.Equal(t, "RemoteError", promoted.Name())
	require.Equal(t, "upstream failed", promoted.Message())
}

func TestAttach_Merges(t *testing.T) {
	err := New(Config{})

	Attach(err, map[string]any{"a": 1})
	Attach(err, map[string]any{"b": 2})

	require.Equal(t, map[string]any{"a": 1, "b": 2}, err.Data())
}

func TestAttach_OverwritesOnCollision(t *testing.T) {
	err := New(Config{Data: map[string]any{"a": 1, "keep": true}})

	Attach(err, map[string]any{"a": 2})

	require.Equal(t, map[string]any{"a": 2, "keep": true}, err.Data())
}

func TestAttach_EmptyMapInitializes(t *testing.T) {
	err := New(Config{})
	Attach(err, map[string]any{})

	require.NotNil(t, err.Data())
	require.Empty(t, err.Data())
}

func TestAttach_NoOp(t *testing.T) {
	err := New(Config{Data: map[string]any{"a": 1}})

	require.True(t, Attach(err, nil) == error(err))
	require.Equal(t, map[string]any{"a": 1}, err.Data())
	require.Nil(t, Attach(nil, map[string]any{"a": 1}))
}

func TestAttach_NilErrorPointer(t *testing.T) {
	var xe *Error
	var err error = xe

	out := Attach(err, map[string]any{"a": 1})
	require.True(t, out == err)
}

func TestAttach_DoesNotAliasInput(t *testing.T) {
	err := New(Config{})
	data := map[string]any{"a": 1}

	Attach(err, data)
	data["a"] = 99

	require.Equal(t, 1, err.Data()["a"])
}

func TestWithData(t *testing.T) {
	err := New(Config{})

	WithData(err, "project", "api")
	WithData(err, "phase", "test")

	require.Equal(t, map[string]any{"project": "api", "phase": "test"}, err.Data())
	require.Nil(t, WithData(nil, "k", "v"))
}

func TestDecorate(t *testing.T) {
	err := New(Config{})

	out := Decorate(err, Decoration{
		Tags: []string{"payments"},
		Data: map[string]any{"order": "o-1"},
	})

	require.True(t, out == error(err))
	require.Equal(t, []string{"payments"}, err.Tags())
	require.Equal(t, map[string]any{"order": "o-1"}, err.Data())
}

func TestDecorate_PartialFields(t *testing.T) {
	err := New(Config{})

	Decorate(err, Decoration{Tags: []string{"only-tags"}})
	require.Equal(t, []string{"only-tags"}, err.Tags())
	require.Nil(t, err.Data())

	Decorate(err, Decoration{Data: map[string]any{"only": "data"}})
	require.Equal(t, []string{"only-tags"}, err.Tags())
	require.Equal(t, map[string]any{"only": "data"}, err.Data())
}

func TestDecorate_NoOp(t *testing.T) {
	plain := stderrors.New("boom")

	require.True(t, Decorate(plain, Decoration{}) == plain)
	require.Nil(t, Decorate(nil, Decoration{Tags: []string{"a"}}))
}

func TestDecorate_PromotesOnce(t *testing.T) {
	plain := stderrors.New("boom")

	out := Decorate(plain, Decoration{Tags: []string{"a"}, Data: map[string]any{"k": "v"}})

	promoted := out.(*Error)
	require.Equal(t, plain, promoted.Cause())
	require.Equal(t, []string{"a"}, promoted.Tags())
	require.Equal(t, map[string]any{"k": "v"}, promoted.Data())
}
