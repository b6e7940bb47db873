package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.c", true},
		{"user.name@example.co.uk", true},
		{"A@B.COM", true},
		{"a@b", false},
		{"@b.c", false},
		{"a@b.", false},
		{"a b@c.d", false},
		{"", false},
		{"plainstring", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidAgentCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"00042", true},
		{"12345", true},
		{"1234", false},
		{"123456", false},
		{"12a45", false},
		{"", false},
		{" 1234", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAgentCode(tt.code))
		})
	}
}
