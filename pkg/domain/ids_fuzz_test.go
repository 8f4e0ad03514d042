//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseOrganizationID checks that parsing never panics and that accepted
// ids round-trip and stay inside the slug alphabet.
func FuzzParseOrganizationID(f *testing.F) {
	f.Add("")
	f.Add("org_123")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("'; DROP TABLE organizations;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("org/../../admin")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseOrganizationID(input)
		if err != nil {
			return
		}

		roundTrip, err2 := ParseOrganizationID(id.String())
		if err2 != nil || roundTrip != id {
			t.Errorf("valid id failed round-trip: %q", input)
		}
		if !utf8.ValidString(input) {
			t.Error("non-UTF8 input was accepted")
		}
		for i := 0; i < len(input); i++ {
			if !isIDByte(input[i]) {
				t.Errorf("accepted byte %q outside the id alphabet", input[i])
			}
		}
	})
}
