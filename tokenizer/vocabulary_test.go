package tokenizer

import "testing"

func TestVocabularySetAndEncode(t *testing.T) {
	v := newVocabulary()
	v.set("hello", 5)

	if id := v.encode("hello"); id != 5 {
		t.Errorf("encode(hello) = %d, want 5", id)
	}
	if id := v.encode("missing"); id != -1 {
		t.Errorf("encode(missing) = %d, want -1", id)
	}

	tok, ok := v.decode(5)
	if !ok || tok != "hello" {
		t.Errorf("decode(5) = (%q, %v), want (hello, true)", tok, ok)
	}

	if _, ok := v.decode(999); ok {
		t.Error("decode(999) should report not-found")
	}
}

func TestVocabularySetPrecedence(t *testing.T) {
	v := newVocabulary()
	v.set("from_model", 3)
	if v.set("from_added_tokens", 3) {
		t.Error("set at an already-occupied id should report false")
	}
	if tok, _ := v.decode(3); tok != "from_model" {
		t.Errorf("decode(3) = %q, want model vocab entry to win", tok)
	}
}

func TestSetSpecialSkipsOccupiedSlot(t *testing.T) {
	v := newVocabulary()
	v.set("hello", 3)

	v.setSpecial("<s>", 3)

	if _, ok := v.special["<s>"]; ok {
		t.Error("setSpecial must not register when id already holds a different vocab entry")
	}
	if tok, _ := v.decode(3); tok != "hello" {
		t.Errorf("decode(3) = %q, want the original vocab entry preserved", tok)
	}
}

func TestVocabularySpecialTokens(t *testing.T) {
	v := newVocabulary()
	v.setSpecial("<s>", 0)
	v.setSpecial("</s>", 1)

	got := v.specialTokens()
	if len(got) != 2 {
		t.Fatalf("specialTokens() returned %d entries, want 2", len(got))
	}

	if id := v.encode("<s>"); id != 0 {
		t.Errorf("encode(<s>) = %d, want 0", id)
	}
}

func TestVocabularyMaxID(t *testing.T) {
	v := newVocabulary()
	if v.maxID() != -1 {
		t.Errorf("maxID() on empty vocabulary = %d, want -1", v.maxID())
	}
	v.set("x", 10)
	if v.maxID() != 10 {
		t.Errorf("maxID() = %d, want 10", v.maxID())
	}
}
