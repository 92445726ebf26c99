package gardenfaq

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6
	kanaShift     = 0x60
)

// Normalize canonicalizes text for matching: ASCII lowercase, katakana folded
// to hiragana, then long-vowel marks, hyphens, whitespace and bracket/comma/period
// punctuation removed. The result is stable under repeated application.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	out, _, err := transform.String(newNormalizer(), text)
	if err != nil {
		return ""
	}
	return out
}

// transform.Chain keeps internal buffers, so each call gets its own chain.
func newNormalizer() transform.Transformer {
	return transform.Chain(
		runes.Map(lowerASCII),
		runes.Map(katakanaToHiragana),
		runes.Remove(runes.Predicate(isDash)),
		runes.Remove(runes.Predicate(unicode.IsSpace)),
		runes.Remove(runes.Predicate(isStrippedPunct)),
	)
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func katakanaToHiragana(r rune) rune {
	if r >= katakanaFirst && r <= katakanaLast {
		return r - kanaShift
	}
	return r
}

func isDash(r rune) bool {
	switch r {
	case 'ー', 'ｰ', '-', '‐', '‑', '‒', '–', '—', '―', '−', '－':
		return true
	}
	return false
}

func isStrippedPunct(r rune) bool {
	switch r {
	case '(', ')', '（', '）',
		'「', '」', '『', '』', '【', '】',
		',', '.', '、', '。', '，', '．':
		return true
	}
	return false
}
