// Package tokenizer implements a byte-level byte-pair-encoding
// tokenizer compatible with HuggingFace tokenizer.json documents: a
// loader that turns the JSON document into in-memory indices, an
// encode pipeline (special-token segmentation, pre-tokenizer chain,
// BPE merge), and a decoder that inverts the byte-level alphabet.
//
// Training, non-BPE tokenizer models, normalizers other than identity,
// post-processors, truncation/padding, and streaming encode are out of
// scope; see SPEC_FULL.md.
package tokenizer

import "github.com/jmorganca/bbpe/logutil"

// Tokenizer is an immutable, concurrency-safe handle built by Load or
// LoadFromBytes. All Encode/Decode calls on the same handle may run
// concurrently; nothing about encoding mutates tokenizer state.
type Tokenizer struct {
	vocab       *vocabulary
	merges      *mergeTable
	alphabet    *alphabet
	preTokChain preTokenizerChain
	special     *specialSplitter
}

// Encode tokenizes text into a sequence of vocabulary ids. The pipeline
// is: split on special tokens, run the pre-tokenizer chain over every
// non-special span, byte-expand and BPE-merge each resulting chunk,
// and concatenate. Special-token segmentation always runs regardless
// of addSpecial, matching the teacher's Encode, where the equivalent
// loop over SpecialVocabulary is unconditional; addSpecial is accepted
// only for call-shape symmetry with HuggingFace tokenizers that
// prepend/append post-processor template tokens (BOS/EOS), which is
// out of scope for this package.
func (t *Tokenizer) Encode(text string, addSpecial bool) ([]int32, error) {
	if text == "" {
		return nil, nil
	}

	segments := t.special.split(text)

	var ids []int32
	for _, seg := range segments {
		if seg.isSpecial {
			ids = append(ids, seg.id)
			continue
		}
		for _, chunk := range t.preTokChain.apply(seg.text) {
			ids = append(ids, t.encodeChunk(chunk)...)
		}
	}

	logutil.Trace("tokenizer: encoded", "input_len", len(text), "token_count", len(ids))
	return ids, nil
}

// encodeChunk expands chunk into its byte-level alphabet ids and runs
// the BPE merge loop over them.
func (t *Tokenizer) encodeChunk(chunk string) []int32 {
	if chunk == "" {
		return nil
	}

	// Short-circuit if the whole chunk is itself a vocabulary entry,
	// avoiding the merge loop entirely for the common case of a short,
	// already-merged word.
	expanded := t.alphabet.expand(chunk)
	if id := t.vocab.encode(expanded); id >= 0 {
		return []int32{id}
	}

	ids := make([]int32, 0, len(chunk))
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		id := t.vocab.encode(t.alphabet.byteString(b))
		if id < 0 {
			// Byte-level vocabularies always contain every one of the
			// 256 single-byte alphabet tokens; this would indicate a
			// malformed tokenizer.json, not a text-dependent failure.
			// Fall back to skipping the byte rather than losing the
			// rest of the chunk.
			continue
		}
		ids = append(ids, id)
	}

	return bytePairEncode(ids, t.merges)
}
