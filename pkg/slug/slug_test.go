package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []slug.Option
		want string
	}{
		{name: "simple", in: "Grace Chapel", want: "grace-chapel"},
		{name: "apostrophe dropped", in: "St. Mary's Church", want: "st-marys-church"},
		{name: "curly apostrophe dropped", in: "St Mary’s", want: "st-marys"},
		{name: "diacritics folded", in: "Église Saint-Étienne", want: "eglise-saint-etienne"},
		{name: "runs collapse", in: "  Holy -- Trinity!!  ", want: "holy-trinity"},
		{name: "digits kept", in: "Church 24/7", want: "church-24-7"},
		{name: "non latin dropped", in: "Церковь", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "max length", in: "All Saints Parish Church", opts: []slug.Option{slug.MaxLength(11)}, want: "all-saints"},
		{name: "reserved", in: "API", opts: []slug.Option{slug.Reserved("api", "www")}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}

func TestMake_FitsDNSLabel(t *testing.T) {
	t.Parallel()

	s := slug.Make(strings.Repeat("church ", 30))
	require.LessOrEqual(t, len(s), slug.MaxLabelLength)
	require.True(t, slug.Valid(s))
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"stmarys", "st-marys", "church24"} {
		require.True(t, slug.Valid(s), s)
	}
	for _, s := range []string{"", "-stmarys", "stmarys-", "st--marys", "St-Marys", "st_marys", "st.marys", strings.Repeat("a", 64)} {
		require.False(t, slug.Valid(s), s)
	}
}
