package match

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jump (Remastered 2019)", "jump"},
		{"Jump [Live]", "jump"},
		{"Sahara (Live)", "sahara"},
		{"Sahara - 2011 Remaster", "sahara"},
		{"Sahara - Sped Up", "sahara"},
		{"Higher feat. Someone Else", "higher"},
		{"Higher ft. Someone Else", "higher"},
		{"Higher featuring Someone Else", "higher"},
		{"Slow Burn - Acoustic Version", "slow burn"},
		{"Gold - Radio Edit", "gold"},
		{"Don't Stop!!", "don t stop"},
		{"  Spaced   Out  ", "spaced out"},
		{"", ""},
		{"(only brackets)", ""},
		{"Live Wire", "live wire"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Jump (Remastered 2019)",
		"Sahara - Live at the Troubadour",
		"Higher feat. Someone Else",
		"Don't Stop Believin' - 2022 Remaster",
		"weird ((nested) brackets]",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeCaseAndQualifierEquivalence(t *testing.T) {
	if Normalize("Jump (Remastered 2019)") != Normalize("jump") {
		t.Fatal("expected remastered qualifier to normalize away")
	}
	if Normalize("SAHARA") != Normalize("Sahara") {
		t.Fatal("expected case-insensitive normalization")
	}
}
