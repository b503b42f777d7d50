package tokenizer

import (
	"errors"
	"testing"
)

func TestDecodeEmptyInput(t *testing.T) {
	tok := mustLoad(t, abcTokenizerJSON)
	_, err := tok.Decode(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Decode(nil) = %v, want ErrInvalidInput", err)
	}

	_, err = tok.Decode([]int32{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Decode([]) = %v, want ErrInvalidInput", err)
	}
}

func TestDecodeUnknownID(t *testing.T) {
	tok := mustLoad(t, abcTokenizerJSON)
	_, err := tok.Decode([]int32{999})
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("error %v does not wrap ErrTokenNotFound", err)
	}
}

func TestDecodeMultipleTokens(t *testing.T) {
	tok := mustLoad(t, abcTokenizerJSON)
	text, err := tok.Decode([]int32{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "abcd" {
		t.Errorf("Decode([a,b,c,d]) = %q, want %q", text, "abcd")
	}
}

func TestDecodeSpecialToken(t *testing.T) {
	tok := mustLoad(t, abcTokenizerJSON)
	text, err := tok.Decode([]int32{8})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "<s>" {
		t.Errorf("Decode([<s>]) = %q, want %q", text, "<s>")
	}
}
