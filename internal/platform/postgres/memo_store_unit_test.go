package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain term untouched", "groceries", "groceries"},
		{"percent is literal", "100%", `100\%`},
		{"underscore is literal", "snake_case", `snake\_case`},
		{"backslash is doubled", `C:\notes`, `C:\\notes`},
		{"mixed metacharacters", `50%_off\`, `50\%\_off\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escapeLikePattern(tt.in))
		})
	}
}
