package hexutil

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello, world!", "68656c6c6f2c20776f726c6421"},
		{"hello, hutugo!", "68656c6c6f2c2068757475676f21"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"68656c6c6f2c20776f726c6421", "hello, world!"},
		{"68656c6c6f2c2068757475676f21", "hello, hutugo!"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if err != nil {
			t.Errorf("Decode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range []string{"abc", "zz", "0g"} {
		if _, err := Decode(in); err == nil {
			t.Errorf("Decode(%q) should fail", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"hello",
		"all ASCII: ~!@#$%^&*()_+ 0123456789",
		"\x00\x01\x7f",
	}
	for _, in := range inputs {
		got, err := Decode(Encode(in))
		if err != nil {
			t.Errorf("round trip of %q error = %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}
