//go:build unit

package password_test

import (
	"strings"
	"testing"

	"sendero-web/internal/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestVerifier(t *testing.T) {
	const secret = "trail-preview"
	v := password.NewVerifier(secret, nil)

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact secret", input: secret, want: true},
		{name: "empty input", input: "", want: false},
		{name: "first character differs", input: "Xrail-preview", want: false},
		{name: "last character differs", input: "trail-previeX", want: false},
		{name: "extra trailing character", input: secret + "!", want: false},
		{name: "extra trailing NUL", input: secret + "\x00", want: false},
		{name: "prefix only", input: "trail", want: false},
		{name: "different case", input: strings.ToUpper(secret), want: false},
		{name: "much longer", input: strings.Repeat(secret, 10), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Verify(tc.input))
		})
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := password.NewVerifier("", nil)

	assert.False(t, v.Configured())
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("anything"))
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, password.ConstantTimeEqual("", ""))
	assert.True(t, password.ConstantTimeEqual("abc", "abc"))
	assert.False(t, password.ConstantTimeEqual("abc", "abd"))
	assert.False(t, password.ConstantTimeEqual("abc", "abc\x00"))
	assert.False(t, password.ConstantTimeEqual("abc\x00", "abc"))
	assert.False(t, password.ConstantTimeEqual("", "\x00"))
}
