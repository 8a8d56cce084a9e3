package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitImages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "/uploads/recipes/a.png", []string{"/uploads/recipes/a.png"}},
		{"blanks dropped", "a.png, ,b.png,", []string{"a.png", "b.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitImages(tt.in))
		})
	}
}

func TestUser_PasswordNotSerialized(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Email: "a@b.c", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.Contains(t, string(b), `"profilePicture"`)
}
