package directory_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/directory"
	"github.com/churchconnect/edge/pkg/tenant"
)

const seedYAML = `
churches:
  - name: St Mary's Parish
    email: office@stmarys.example
    is_active: true
    primary_color: "#1d4ed8"
  - slug: grace
    name: Grace Community
    email: hello@grace.example
    subscription_status: active
    is_active: true
  - slug: closed
    name: Closed Chapel
    email: closed@example.com
    is_active: false
`

func TestLoadSeed(t *testing.T) {
	t.Parallel()

	tenants, err := directory.LoadSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, tenants, 3)

	require.Equal(t, "st-marys-parish", tenants[0].Slug)
	require.Equal(t, tenant.SubscriptionTrial, tenants[0].SubscriptionStatus)
	require.NotEmpty(t, tenants[0].ID)
	require.False(t, tenants[0].CreatedAt.IsZero())
	require.Equal(t, "#1d4ed8", tenants[0].PrimaryColor)

	require.Equal(t, "grace", tenants[1].Slug)
	require.Equal(t, tenant.SubscriptionActive, tenants[1].SubscriptionStatus)

	require.False(t, tenants[2].Active)
}

func TestLoadSeed_Empty(t *testing.T) {
	t.Parallel()

	tenants, err := directory.LoadSeed(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, tenants)
}

func TestLoadSeed_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "malformed yaml",
			yaml: "churches: [",
			err:  directory.ErrInvalidSeed,
		},
		{
			name: "invalid slug",
			yaml: "churches:\n  - slug: Not_Valid\n    name: x\n",
			err:  directory.ErrInvalidSeed,
		},
		{
			name: "name without usable characters",
			yaml: "churches:\n  - name: '!!!'\n",
			err:  directory.ErrInvalidSeed,
		},
		{
			name: "duplicate slug",
			yaml: "churches:\n  - slug: grace\n    name: a\n  - name: Grace\n",
			err:  directory.ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := directory.LoadSeed(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tenants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	tenants, err := directory.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, tenants, 3)

	_, err = directory.LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, directory.ErrReadSeed)
}
