package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibiology/itol/pkg/errors"
)

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Separator
	}{
		{"lowercase tab", "tab", Tab},
		{"uppercase tab", "TAB", Tab},
		{"mixed case space", "Space", Space},
		{"lowercase comma", "comma", Comma},
		{"uppercase comma", "COMMA", Comma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeparator(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeparatorCaseInsensitiveHeader(t *testing.T) {
	// tab and TAB must resolve to the same canonical header line
	lower, err := ParseSeparator("tab")
	require.NoError(t, err)
	upper, err := ParseSeparator("TAB")
	require.NoError(t, err)
	assert.Equal(t, lower.HeaderLine(), upper.HeaderLine())
	assert.Equal(t, "SEPARATOR TAB", lower.HeaderLine())
}

func TestParseSeparatorInvalid(t *testing.T) {
	for _, name := range []string{"", "semicolon", "pipe", "tabs"} {
		_, err := ParseSeparator(name)
		require.Error(t, err, "name %q", name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSeparator))
	}
}

func TestSeparatorDelimiter(t *testing.T) {
	assert.Equal(t, "\t", Tab.Delimiter())
	assert.Equal(t, " ", Space.Delimiter())
	assert.Equal(t, ",", Comma.Delimiter())
}
