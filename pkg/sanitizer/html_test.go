package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/sanitizer"
)

func TestRichText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "keeps basic formatting",
			input:    `<p>Welcome to <strong>Grace</strong></p><ul><li>Sunday 10am</li></ul>`,
			contains: []string{"<p>", "<strong>Grace</strong>", "<li>Sunday 10am</li>"},
		},
		{
			name:     "strips scripts",
			input:    `<p>Hi</p><script>alert(1)</script>`,
			contains: []string{"<p>Hi</p>"},
			excludes: []string{"script", "alert"},
		},
		{
			name:     "strips javascript links",
			input:    `<a href="javascript:alert(1)">click</a>`,
			contains: []string{"click"},
			excludes: []string{"javascript"},
		},
		{
			name:     "external links get nofollow",
			input:    `<a href="https://example.com">site</a>`,
			contains: []string{"nofollow", `target="_blank"`},
		},
		{
			name:     "strips style attributes",
			input:    `<p style="color:red">x</p>`,
			excludes: []string{"style"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizer.RichText(tt.input)
			for _, s := range tt.contains {
				require.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				require.NotContains(t, got, s)
			}
		})
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"#1d4ed8", "#1d4ed8"},
		{"#FFF", "#FFF"},
		{"", "#000"},
		{"red", "#000"},
		{"#12345", "#000"},
		{"#fff}body{display:none", "#000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.Color(tt.in, "#000"))
		})
	}
}
