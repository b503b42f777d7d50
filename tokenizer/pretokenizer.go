package tokenizer

import (
	"github.com/dlclark/regexp2"
)

// defaultPretokenizerPattern is the GPT-2/GPT-4 style pattern used when
// a tokenizer.json omits pre_tokenizer entirely, matching what
// huggingface/tokenizers' ByteLevel pre-tokenizer falls back to and
// what Qwen/Llama-family tokenizer.json files declare explicitly.
// The contractions are spelled with explicit [sS]-style classes rather
// than an inline case-insensitive group; regexp2 supports the \s+(?!\S)
// lookahead natively, which an RE2-only implementation cannot express.
const defaultPretokenizerPattern = `'[sS]|'[tT]|'[rR][eE]|'[vV][eE]|'[mM]|'[lL][lL]|'[dD]| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

// preTokenizer is one stage of the pre-tokenizer chain: it fragments a
// single chunk into one or more chunks.
type preTokenizer interface {
	split(chunk string) []string
}

// preTokenizerChain applies each stage in order; a stage runs
// independently over every chunk produced by the previous stage.
type preTokenizerChain []preTokenizer

// apply runs the whole chain over text, starting from the
// single-chunk state [text].
func (c preTokenizerChain) apply(text string) []string {
	chunks := []string{text}
	for _, stage := range c {
		var next []string
		for _, chunk := range chunks {
			next = append(next, stage.split(chunk)...)
		}
		chunks = next
	}
	return chunks
}

// byteLevelPrefix optionally prepends a leading space and otherwise
// passes its input through unchanged, always as a single chunk.
type byteLevelPrefix struct {
	addPrefixSpace bool
}

func (p byteLevelPrefix) split(chunk string) []string {
	if p.addPrefixSpace {
		return []string{" " + chunk}
	}
	return []string{chunk}
}

// regexSplit splits a chunk into alternating between-match and
// matched-text fragments, preserving every byte of the input: the
// huggingface Split pre-tokenizer (non-"removed" behavior) keeps the
// separator as its own token rather than discarding it.
type regexSplit struct {
	pattern *regexp2.Regexp
}

func (p regexSplit) split(chunk string) []string {
	if chunk == "" {
		return []string{chunk}
	}

	runes := []rune(chunk)
	var chunks []string
	offset := 0

	m, _ := p.pattern.FindRunesMatch(runes)
	for m != nil {
		start, length := m.Index, m.Length
		if start > offset {
			chunks = append(chunks, string(runes[offset:start]))
		}

		if length == 0 {
			// Empty match: emit nothing for it. The text before it was
			// emitted above, so offset moves to start and no rune is
			// dropped; FindNextMatch itself resumes one rune past an
			// empty match, which guarantees termination.
			if start > offset {
				offset = start
			}
			m, _ = p.pattern.FindNextMatch(m)
			continue
		}

		chunks = append(chunks, string(runes[start:start+length]))
		offset = start + length

		m, _ = p.pattern.FindNextMatch(m)
	}

	if offset < len(runes) {
		chunks = append(chunks, string(runes[offset:]))
	}

	if len(chunks) == 0 {
		return []string{chunk}
	}
	return chunks
}

// flattenPreTokenizer parses a pre_tokenizer JSON node (already decoded
// into a generic tree by the loader) into a chain. A "Sequence" node
// recurses over its "pretokenizers" list; any other node forms a
// single-element chain.
func flattenPreTokenizer(node map[string]any) (preTokenizerChain, error) {
	if node == nil {
		return preTokenizerChain{byteLevelPrefix{}, mustDefaultSplit()}, nil
	}

	typ, _ := node["type"].(string)
	if typ == "Sequence" {
		raw, _ := node["pretokenizers"].([]any)
		var chain preTokenizerChain
		for _, elem := range raw {
			m, ok := elem.(map[string]any)
			if !ok {
				continue
			}
			stage, err := parsePreTokenizerNode(m)
			if err != nil {
				return nil, err
			}
			chain = append(chain, stage)
		}
		return chain, nil
	}

	stage, err := parsePreTokenizerNode(node)
	if err != nil {
		return nil, err
	}
	return preTokenizerChain{stage}, nil
}

func parsePreTokenizerNode(node map[string]any) (preTokenizer, error) {
	typ, _ := node["type"].(string)
	switch typ {
	case "ByteLevel":
		addPrefixSpace, _ := node["add_prefix_space"].(bool)
		return byteLevelPrefix{addPrefixSpace: addPrefixSpace}, nil
	case "Split":
		pattern := extractRegexPattern(node)
		if pattern == "" {
			pattern = defaultPretokenizerPattern
		}
		re, err := regexp2.Compile(pattern, regexp2.Unicode)
		if err != nil {
			return nil, &regexCompileError{pattern: pattern, err: err}
		}
		return regexSplit{pattern: re}, nil
	default:
		return nil, &unsupportedTypeError{kind: "pre_tokenizer", typ: typ}
	}
}

// extractRegexPattern pulls pattern.Regex out of a Split node, the
// only pattern shape tokenizer.json uses for pre_tokenizer.Split.
func extractRegexPattern(node map[string]any) string {
	pattern, ok := node["pattern"].(map[string]any)
	if !ok {
		return ""
	}
	regex, _ := pattern["Regex"].(string)
	return regex
}

func mustDefaultSplit() preTokenizer {
	re, err := regexp2.Compile(defaultPretokenizerPattern, regexp2.Unicode)
	if err != nil {
		// The default pattern is a compile-time constant verified by
		// this package's own tests; a failure here means the constant
		// itself is broken, not a caller input.
		panic("tokenizer: default pre-tokenizer pattern failed to compile: " + err.Error())
	}
	return regexSplit{pattern: re}
}
