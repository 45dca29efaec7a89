package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/plugkit/internal/assets"
	"github.com/vk/plugkit/internal/hooks"
)

// recordingComponent records boot invocations into a shared journal.
type recordingComponent struct {
	name    string
	journal *[]string
	fail    error
}

func (c *recordingComponent) Boot(ctx context.Context, host Host) error {
	*c.journal = append(*c.journal, c.name)
	return c.fail
}

// stubHost is the minimal Host used by registry tests.
type stubHost struct{}

func (stubHost) Hooks() *hooks.Bus          { return hooks.NewBus() }
func (stubHost) Assets() *assets.Resolver   { return assets.NewResolver("https://example.com", "") }
func (stubHost) Path(file ...string) string { return "/tmp" }
func (stubHost) URI(file ...string) string  { return "https://example.com" }
func (stubHost) TextDomain() string         { return "test" }
func (stubHost) LanguagesDir() string       { return "languages" }

func newTestRegistry(journal *[]string) *Registry {
	return New(map[string]Factory{
		"editor": func() Component { return &recordingComponent{name: "editor", journal: journal} },
		"blocks": func() Component { return &recordingComponent{name: "blocks", journal: journal} },
	})
}

func TestRegister_And_Get_SingletonIdentity(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)
	ctx := context.Background()

	// --- Act ---
	require.NoError(t, r.Register(ctx, "editor"))
	first, err1 := r.Get("editor")
	second, err2 := r.Get("editor")

	// --- Assert ---
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Same(t, first, second, "Get must return the same instance across calls")
}

func TestGet_Unregistered_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)

	// --- Act ---
	_, err := r.Get("Unknown")

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotRegistered)
	require.Contains(t, err.Error(), "Unknown")
}

func TestRegister_UnknownFactory_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)

	// --- Act ---
	err := r.Register(context.Background(), "does-not-exist")

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "no factory for component 'does-not-exist'")
}

func TestRegister_Overwrite_ReplacesInstanceKeepsOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)
	ctx := context.Background()
	require.NoError(t, r.Register(ctx, "editor"))
	require.NoError(t, r.Register(ctx, "blocks"))
	before, _ := r.Get("editor")

	// --- Act ---
	require.NoError(t, r.Register(ctx, "editor"))
	after, _ := r.Get("editor")

	// --- Assert ---
	require.NotSame(t, before, after, "re-registration must construct a fresh instance")
	require.Equal(t, []string{"editor", "blocks"}, r.Identifiers(), "overwrite must keep the original boot position")
}

func TestBootAll_RunsInRegistrationOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)
	ctx := context.Background()
	require.NoError(t, r.Register(ctx, "blocks"))
	require.NoError(t, r.Register(ctx, "editor"))

	// --- Act ---
	err := r.BootAll(ctx, stubHost{})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"blocks", "editor"}, journal)
}

func TestBootAll_StopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	bootErr := errors.New("editor exploded")
	r := New(map[string]Factory{
		"editor": func() Component { return &recordingComponent{name: "editor", journal: &journal, fail: bootErr} },
		"blocks": func() Component { return &recordingComponent{name: "blocks", journal: &journal} },
	})
	ctx := context.Background()
	require.NoError(t, r.Register(ctx, "editor"))
	require.NoError(t, r.Register(ctx, "blocks"))

	// --- Act ---
	err := r.BootAll(ctx, stubHost{})

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, bootErr)
	require.Contains(t, err.Error(), "failed to boot component 'editor'")
	require.Equal(t, []string{"editor"}, journal, "blocks must not boot after editor fails")
}

func TestAddFactory_Duplicate_Panics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var journal []string
	r := newTestRegistry(&journal)

	// --- Act / Assert ---
	require.Panics(t, func() {
		r.AddFactory("editor", func() Component { return &recordingComponent{name: "editor", journal: &journal} })
	})
}
