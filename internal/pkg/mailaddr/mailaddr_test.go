//go:build unit

package mailaddr_test

import (
	"strings"
	"testing"

	"studio-booking/internal/pkg/mailaddr"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "Guest@Example.com", want: "guest@example.com", wantOK: true},
		{in: "  jane.doe+shoot@studio.ph ", want: "jane.doe+shoot@studio.ph", wantOK: true},
		{in: "", wantOK: false},
		{in: "invalidemail.com", wantOK: false},
		{in: "two@@signs.com", wantOK: false},
		{in: strings.Repeat("a", 250) + "@x.com", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := mailaddr.Normalize(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
