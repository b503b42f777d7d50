package tokenizer

import (
	"fmt"
	"strings"
)

// Decode reconstructs text from a sequence of token ids, inverting the
// byte-level alphabet rune by rune. A rune outside the alphabet's
// mapped range (i.e. not produced by encodeByte) is emitted as its own
// UTF-8 bytes verbatim — this covers special tokens and any added
// token text that was never passed through the byte-level alphabet.
func (t *Tokenizer) Decode(ids []int32) (string, error) {
	if len(ids) == 0 {
		return "", ErrInvalidInput
	}

	var out strings.Builder
	for _, id := range ids {
		tok, ok := t.vocab.decode(id)
		if !ok {
			return "", &tokenNotFoundError{id: id}
		}

		for _, r := range tok {
			if b, ok := t.alphabet.decodeRune(r); ok {
				out.WriteByte(b)
				continue
			}
			out.WriteRune(r)
		}
	}
	return out.String(), nil
}

type tokenNotFoundError struct {
	id int32
}

func (e *tokenNotFoundError) Error() string {
	return fmt.Sprintf("tokenizer: token id %d not found in vocabulary", e.id)
}

func (e *tokenNotFoundError) Unwrap() error { return ErrTokenNotFound }
