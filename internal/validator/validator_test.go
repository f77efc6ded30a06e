package validator

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+folio@example.co.uk",
		"a@b.io",
	}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"jane@",
		"jane@.com",
		"jane example@example.com",
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}
