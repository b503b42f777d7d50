package tokenizer

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/jmorganca/bbpe/logutil"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// rawTokenizer is the subset of tokenizer.json this package understands.
// pre_tokenizer is left as a generic tree (map[string]any) since its
// shape varies by tokenizer family; the decoder section is not read at
// all; everything else is
// typed directly, the way the teacher's own loader does for the
// fields it actually consumes.
type rawTokenizer struct {
	Model struct {
		Type   string          `json:"type"`
		Vocab  map[string]int32 `json:"vocab"`
		Merges jsoniter.RawMessage `json:"merges"`
	} `json:"model"`
	PreTokenizer map[string]any `json:"pre_tokenizer"`
	AddedTokens  []struct {
		ID      int32  `json:"id"`
		Content string `json:"content"`
		Special bool   `json:"special"`
	} `json:"added_tokens"`
}

// Load reads a tokenizer.json document from r and builds a ready-to-use
// Tokenizer.
func Load(r io.Reader) (*Tokenizer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: failed to read tokenizer.json: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes builds a Tokenizer from an already-in-memory
// tokenizer.json document. This is the entry point blob-storage callers
// use when the file never touches disk.
func LoadFromBytes(data []byte) (*Tokenizer, error) {
	var raw rawTokenizer
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}

	if raw.Model.Type != "" && raw.Model.Type != "BPE" {
		return nil, &unsupportedTypeError{kind: "model", typ: raw.Model.Type}
	}

	if len(raw.Model.Vocab) == 0 {
		return nil, ErrVocabMissing
	}

	vocab := newVocabulary()
	maxID := int32(-1)
	for token, id := range raw.Model.Vocab {
		vocab.set(token, id)
		if id > maxID {
			maxID = id
		}
	}

	mergeStrings, err := decodeMerges(raw.Model.Merges)
	if err != nil {
		return nil, err
	}

	merges := newMergeTable(int(maxID) + 1)
	for priority, line := range mergeStrings {
		left, right, ok := splitMergePair(line)
		if !ok {
			logutil.Trace("tokenizer: skipping unparsable merge rule", "rule", line)
			continue
		}
		leftID := vocab.encode(left)
		rightID := vocab.encode(right)
		if leftID < 0 || rightID < 0 {
			logutil.Trace("tokenizer: skipping merge rule with unknown token", "rule", line)
			continue
		}
		newID := vocab.encode(left + right)
		if newID < 0 {
			logutil.Trace("tokenizer: skipping merge rule with no resulting vocab entry", "rule", line)
			continue
		}
		merges.add(leftID, rightID, newID, int32(priority))
	}

	for _, tok := range raw.AddedTokens {
		if int(tok.ID) > int(maxID) {
			maxID = tok.ID
		}
		merges.grow(int(maxID) + 1)
		vocab.setSpecial(tok.Content, tok.ID)
	}

	merges.finalize()

	chain, err := flattenPreTokenizer(raw.PreTokenizer)
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		vocab:       vocab,
		merges:      merges,
		alphabet:    newAlphabet(),
		preTokChain: chain,
		special:     newSpecialSplitter(vocab.special),
	}

	logutil.Trace("tokenizer: loaded", "vocab_size", len(vocab.values), "merge_rules", len(mergeStrings), "special_tokens", len(vocab.special))

	return t, nil
}

// decodeMerges normalizes model.merges into its "L R" string form.
// HuggingFace tokenizer.json files use either an array of "L R" strings
// (the historical format) or an array of [L, R] two-element arrays (the
// newer format, e.g. gpt-oss); this accepts both.
func decodeMerges(raw jsoniter.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var asStrings []string
	if err := jsonAPI.Unmarshal(raw, &asStrings); err == nil {
		return asStrings, nil
	}

	var asPairs [][]string
	if err := jsonAPI.Unmarshal(raw, &asPairs); err != nil {
		return nil, fmt.Errorf("%w: model.merges has an unrecognized shape: %v", ErrJSONParse, err)
	}

	lines := make([]string, 0, len(asPairs))
	for _, pair := range asPairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: merge pair with %d elements, want 2", ErrJSONParse, len(pair))
		}
		lines = append(lines, pair[0]+" "+pair[1])
	}
	return lines, nil
}

// splitMergePair splits a "L R" merge rule on its single separating
// space. Token text itself may contain no spaces (the byte-level
// alphabet never produces one), so the first space is always the
// delimiter.
func splitMergePair(line string) (left, right string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			return line[:i], line[i+1:], true
		}
	}
	return "", "", false
}
