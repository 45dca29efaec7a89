package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoAction_PriorityOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	var order []string
	record := func(name string) ActionFunc {
		return func(ctx context.Context, args ...any) error {
			order = append(order, name)
			return nil
		}
	}
	bus.AddAction("init", 20, record("late"))
	bus.AddAction("init", 5, record("early"))
	bus.AddAction("init", DefaultPriority, record("default"))

	// --- Act ---
	err := bus.DoAction(context.Background(), "init")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"early", "default", "late"}, order)
}

func TestDoAction_EqualPriority_InsertionOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		bus.AddAction("init", DefaultPriority, func(ctx context.Context, args ...any) error {
			order = append(order, name)
			return nil
		})
	}

	// --- Act ---
	err := bus.DoAction(context.Background(), "init")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestDoAction_PassesArgs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	var got []any
	bus.AddAction("save_post", DefaultPriority, func(ctx context.Context, args ...any) error {
		got = args
		return nil
	})

	// --- Act ---
	err := bus.DoAction(context.Background(), "save_post", 42, "draft")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []any{42, "draft"}, got)
}

func TestDoAction_ErrorAbortsDispatch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	boom := errors.New("boom")
	var ran []string
	bus.AddAction("init", 1, func(ctx context.Context, args ...any) error {
		ran = append(ran, "first")
		return boom
	})
	bus.AddAction("init", 2, func(ctx context.Context, args ...any) error {
		ran = append(ran, "second")
		return nil
	})

	// --- Act ---
	err := bus.DoAction(context.Background(), "init")

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"first"}, ran)
	require.Equal(t, 1, bus.Did("init"), "a failed dispatch still counts as fired")
}

func TestDid_CountsFires(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	ctx := context.Background()

	// --- Act ---
	require.NoError(t, bus.DoAction(ctx, "init"))
	require.NoError(t, bus.DoAction(ctx, "init"))

	// --- Assert ---
	require.Equal(t, 2, bus.Did("init"))
	require.Equal(t, 0, bus.Did("enqueue_scripts"))
}

func TestHas(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	bus := NewBus()
	bus.AddAction("init", DefaultPriority, func(ctx context.Context, args ...any) error { return nil })

	// --- Assert ---
	require.True(t, bus.Has("init"))
	require.False(t, bus.Has("admin_menu"))
}

func TestAddAction_NilFunc_Panics(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	require.Panics(t, func() {
		bus.AddAction("init", DefaultPriority, nil)
	})
}
