package xerror

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func raising(cfg Config) (err error) {
	defer Recover(&err)
	Raise(cfg)
	return nil
}

func raisingKind(k Kind) (err error) {
	defer Recover(&err)
	k.Raise(Config{Message: "raised"})
	return nil
}

func TestRaise(t *testing.T) {
	err := raising(Config{Name: "RaisedError", Message: "boom", Status: 500})

	require.Error(t, err)
	require.True(t, Isa(err))
	xe := err.(*Error)
	require.Equal(t, "RaisedError", xe.Name())
	require.Equal(t, "boom", xe.Message())
	require.Equal(t, 500, xe.Status())
}

func TestRaise_StackExcludesRaiseFrame(t *testing.T) {
	err := raising(Config{})

	frames := err.(*Error).StackTrace()
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0].Function, "raising")
	requireNoInternalFrames(t, frames)
}

func TestKind_Raise(t *testing.T) {
	err := raisingKind(KindConflict)

	require.True(t, KindConflict.Is(err))
	frames := err.(*Error).StackTrace()
	require.Contains(t, frames[0].Function, "raisingKind")
	requireNoInternalFrames(t, frames)
}

func TestRaise_Panics(t *testing.T) {
	require.Panics(t, func() {
		Raise(Config{Name: "Unrecovered"})
	})
}

func TestRecover_RepanicsForeignValues(t *testing.T) {
	require.PanicsWithValue(t, "not an xerror", func() {
		var err error
		defer Recover(&err)
		panic("not an xerror")
	})
}

func TestRecover_NoPanic(t *testing.T) {
	err := func() (err error) {
		defer Recover(&err)
		return nil
	}()
	require.NoError(t, err)
}
