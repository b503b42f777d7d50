package tokenizer

// vocabulary holds the token↔id indices shared by the encoder and
// decoder. values is the id-indexed reverse lookup (populated once at
// load time and never mutated afterwards); reverse is the
// hash-map lookup from token text to id — Go's builtin map is the
// idiomatic stand-in for the external "hash-table library" collaborator.
type vocabulary struct {
	values  []string       // id -> token text, "" for unused ids
	reverse map[string]int32 // token text -> id

	// special holds the added_tokens entries (both "special": true
	// control tokens and ordinary user-added tokens) whose id was not
	// already taken by model.vocab; these all bypass BPE and
	// pre-tokenization alike per HuggingFace semantics.
	special map[string]int32
}

func newVocabulary() *vocabulary {
	return &vocabulary{
		reverse: make(map[string]int32),
		special: make(map[string]int32),
	}
}

// grow extends values so that id is a valid index; the merge rows are
// grown separately by the loader. Existing entries are preserved; new slots
// are the empty string.
func (v *vocabulary) grow(id int32) {
	if int(id) < len(v.values) {
		return
	}
	next := make([]string, id+1)
	copy(next, v.values)
	v.values = next
}

// set interns token at id in the id-indexed slice and the reverse map.
// If id already has a non-empty entry, set is a no-op: vocabulary
// entries loaded from model.vocab take precedence over later
// added_tokens entries at the same id.
func (v *vocabulary) set(token string, id int32) bool {
	v.grow(id)
	if v.values[id] != "" {
		return false
	}
	v.values[id] = token
	v.reverse[token] = id
	return true
}

// setSpecial interns token as a special (added) token at id, in
// addition to the ordinary vocabulary slots populated by set. If id
// already holds a string from model.vocab, whether the same text or a
// different one, the special registration is skipped entirely: a vocab
// entry always owns its id. (Registering a different added_tokens text
// as special would make Encode segment on text that Decode can never
// reproduce for that id.)
func (v *vocabulary) setSpecial(token string, id int32) {
	if !v.set(token, id) {
		return
	}
	v.special[token] = id
}

// encode returns the id for an exact token string, or -1 if absent.
func (v *vocabulary) encode(token string) int32 {
	if id, ok := v.reverse[token]; ok {
		return id
	}
	return -1
}

// decode returns the token text for id, or ("", false) if id is out of
// range or names an unused slot.
func (v *vocabulary) decode(id int32) (string, bool) {
	if id < 0 || int(id) >= len(v.values) || v.values[id] == "" {
		return "", false
	}
	return v.values[id], true
}

// maxID returns the highest valid id, or -1 if the vocabulary is empty.
func (v *vocabulary) maxID() int32 {
	return int32(len(v.values)) - 1
}

// specialTokens returns every registered special-token string. Order
// is unspecified; callers that need deterministic automaton
// construction order should sort the result themselves.
func (v *vocabulary) specialTokens() []string {
	tokens := make([]string, 0, len(v.special))
	for tok := range v.special {
		tokens = append(tokens, tok)
	}
	return tokens
}
