package tokenizer

import "unicode/utf8"

// byteAlphabetSize is large enough to hold every code point the byte
// alphabet can produce: 256 bytes map either to themselves (max 255)
// or to 256+n for the 68 remaining bytes, so 512 entries suffice.
const byteAlphabetSize = 512

// alphabet is the fixed bijection between raw bytes and the "visible"
// code points used inside vocabulary strings, following the GPT-2
// byte-level scheme: printable/high bytes map to themselves, the rest
// map to consecutive private code points starting at 256.
type alphabet struct {
	byteToRune [256]rune
	runeToByte [byteAlphabetSize]byte
	defined    [byteAlphabetSize]bool

	// byteStrings caches the UTF-8 encoding of byteToRune[b] for every
	// byte, so Phase A of the BPE merger never re-encodes a rune.
	byteStrings [256]string
}

func newAlphabet() *alphabet {
	a := &alphabet{}

	n := rune(0)
	for b := 0; b < 256; b++ {
		var r rune
		switch {
		case b >= 33 && b <= 126, b >= 161 && b <= 172, b >= 174 && b <= 255:
			r = rune(b)
		default:
			r = 256 + n
			n++
		}

		a.byteToRune[b] = r
		a.runeToByte[r] = byte(b)
		a.defined[r] = true

		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		a.byteStrings[b] = string(buf[:n])
	}

	return a
}

// encodeByte returns the visible code point for a raw byte.
func (a *alphabet) encodeByte(b byte) rune {
	return a.byteToRune[b]
}

// decodeRune returns the raw byte a code point stands for, if any. The
// explicit ok result avoids the collision a bare "!= 0" test would hit
// for code points that legitimately invert to byte 0.
func (a *alphabet) decodeRune(r rune) (byte, bool) {
	if r < 0 || int(r) >= byteAlphabetSize || !a.defined[r] {
		return 0, false
	}
	return a.runeToByte[r], true
}

// byteString returns the precomputed UTF-8 encoding of encodeByte(b).
func (a *alphabet) byteString(b byte) string {
	return a.byteStrings[b]
}

// expand rewrites each raw byte of s into its visible code point,
// concatenating the result as a string. This is applied to every chunk
// produced by the pre-tokenizer chain before vocabulary lookup.
func (a *alphabet) expand(s string) string {
	var buf []byte
	for i := 0; i < len(s); i++ {
		buf = append(buf, a.byteStrings[s[i]]...)
	}
	return string(buf)
}
