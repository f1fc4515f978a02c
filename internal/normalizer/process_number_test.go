package normalizer

import "testing"

func TestFormatProcessNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare 20 digits", "12345670120234010001", "1234567-01.2023.4.01.0001"},
		{"already masked", "1234567-01.2023.4.01.0001", "1234567-01.2023.4.01.0001"},
		{"only a dash", "1234567-0120234010001", "1234567-0120234010001"},
		{"only a dot", "12345670120234010001.", "12345670120234010001."},
		{"too short", "123", "123"},
		{"empty", "", ""},
		{"nineteen digits", "1234567012023401000", "1234567012023401000"},
		{"twenty one digits", "123456701202340100012", "123456701202340100012"},
		{"twenty chars with letters", "1234567012023401000A", "1234567012023401000A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProcessNumber(tt.in); got != tt.want {
				t.Errorf("FormatProcessNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatProcessNumber_IdentityOnMasked(t *testing.T) {
	for _, in := range []string{"0000001-00.2020.8.16.0001", "5001234-55.2023.4.04.7000", "a.b", "x-y"} {
		if got := FormatProcessNumber(in); got != in {
			t.Errorf("FormatProcessNumber(%q) = %q, want identity", in, got)
		}
	}
}
