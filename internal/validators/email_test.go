package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		in     string
		domain string
		ok     bool
	}{
		{"ana@example.com", "example.com", true},
		{"a@b@example.com.", "example.com", true},
		{"ana@", "", false},
		{"@example.com", "", false},
		{"ana", "", false},
		{"ana@localhost", "", false},
	}

	for _, tc := range cases {
		d, ok := emailDomain(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.domain, d, tc.in)
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("ana@"))
}
