package bch

import "testing"

func TestDecodeVersion_Valid(t *testing.T) {
	cases := []struct {
		raw  uint32
		want uint32
	}{
		{0b0111110010010100, 7},
		{0b101000110001101001, 40},
	}
	for _, c := range cases {
		got, err := DecodeVersion(c.raw)
		if err != nil {
			t.Fatalf("DecodeVersion(%b): unexpected error: %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("DecodeVersion(%b) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestDecodeVersion_SingleBitFlipDetected(t *testing.T) {
	const valid uint32 = 0b0111110010010100
	for bit := uint(0); bit < 18; bit++ {
		flipped := valid ^ (1 << bit)
		if _, err := DecodeVersion(flipped); err == nil {
			t.Fatalf("bit %d: single-bit flip went undetected", bit)
		}
	}
}

func TestDecodeFormat_Valid(t *testing.T) {
	cases := []struct {
		raw  uint32
		want uint32
	}{
		{0b10001111010110, 0b01000},
		{0, 0},
		{0b110111000010100, 0b11011},
	}
	for _, c := range cases {
		got, err := DecodeFormat(c.raw)
		if err != nil {
			t.Fatalf("DecodeFormat(%b): unexpected error: %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("DecodeFormat(%b) = %b, want %b", c.raw, got, c.want)
		}
	}
}

func TestDecodeFormat_SingleBitFlipDetected(t *testing.T) {
	const valid uint32 = 0b10001111010110
	for bit := uint(0); bit < 15; bit++ {
		flipped := valid ^ (1 << bit)
		if _, err := DecodeFormat(flipped); err == nil {
			t.Fatalf("bit %d: single-bit flip went undetected", bit)
		}
	}
}

func TestEncodeVersion_MatchesKnownCodewords(t *testing.T) {
	cases := []struct {
		version uint32
		want    uint32
	}{
		{7, 0b0111110010010100},
		{40, 0b101000110001101001},
	}
	for _, c := range cases {
		got := EncodeVersion(c.version)
		if got != c.want {
			t.Fatalf("EncodeVersion(%d) = %b, want %b", c.version, got, c.want)
		}
		if decoded, err := DecodeVersion(got); err != nil || decoded != c.version {
			t.Fatalf("EncodeVersion(%d) round trip: decoded=%d, err=%v", c.version, decoded, err)
		}
	}
}

func TestEncodeFormat_MatchesKnownCodewords(t *testing.T) {
	cases := []struct {
		format uint32
		want   uint32
	}{
		{0b01000, 0b10001111010110},
		{0, 0},
		{0b11011, 0b110111000010100},
	}
	for _, c := range cases {
		got := EncodeFormat(c.format)
		if got != c.want {
			t.Fatalf("EncodeFormat(%b) = %b, want %b", c.format, got, c.want)
		}
		if decoded, err := DecodeFormat(got); err != nil || decoded != c.format {
			t.Fatalf("EncodeFormat(%b) round trip: decoded=%b, err=%v", c.format, decoded, err)
		}
	}
}
