package tokenizer

import "testing"

func TestAlphabetBijection(t *testing.T) {
	a := newAlphabet()

	seen := make(map[rune]byte)
	for b := 0; b < 256; b++ {
		r := a.encodeByte(byte(b))
		if prev, ok := seen[r]; ok {
			t.Fatalf("byte %d and %d both encode to rune %d", prev, b, r)
		}
		seen[r] = byte(b)

		got, ok := a.decodeRune(r)
		if !ok {
			t.Fatalf("decodeRune(%d) reported undefined for byte %d", r, b)
		}
		if got != byte(b) {
			t.Fatalf("round trip mismatch: byte %d -> rune %d -> byte %d", b, r, got)
		}
	}
}

func TestAlphabetSelfMappedRanges(t *testing.T) {
	a := newAlphabet()
	for _, b := range []int{33, 65, 126, 161, 172, 174, 200, 255} {
		if got := a.encodeByte(byte(b)); got != rune(b) {
			t.Errorf("byte %d: want self-mapped rune %d, got %d", b, b, got)
		}
	}
}

func TestAlphabetPrivateRanges(t *testing.T) {
	a := newAlphabet()
	for _, b := range []int{0, 32, 127, 160, 173} {
		r := a.encodeByte(byte(b))
		if r < 256 {
			t.Errorf("byte %d: want private codepoint >= 256, got %d", b, r)
		}
	}
}

func TestAlphabetDecodeRuneUndefined(t *testing.T) {
	a := newAlphabet()
	if _, ok := a.decodeRune(-1); ok {
		t.Error("decodeRune(-1) should be undefined")
	}
	if _, ok := a.decodeRune(byteAlphabetSize); ok {
		t.Error("decodeRune(byteAlphabetSize) should be undefined")
	}
}

func TestAlphabetExpand(t *testing.T) {
	a := newAlphabet()
	// "ab" lies entirely in the self-mapped range, so expand is the
	// identity for it.
	if got := a.expand("ab"); got != "ab" {
		t.Errorf("expand(%q) = %q, want %q", "ab", got, "ab")
	}
}
