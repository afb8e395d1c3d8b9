// Package rarity has the classification and aggregation logic for commit hashes.
package rarity

import (
	"strings"

	"github.com/oddhash/oddhash/schema"
)

// patternWindow is the number of leading/trailing characters inspected
// by the prefix and suffix rules.
const patternWindow = 9

// Literal substrings matched anywhere in the hash. These are fixed
// patterns, not a general run-of-nine rule.
const (
	nineDigitsRun  = "999999999"
	nineLettersRun = "abcdefghi"
)

// rule ties a hash predicate to the tier and explanation it yields.
type rule struct {
	match       func(hash string) bool
	tier        schema.RarityTier
	explanation string
}

// rules is evaluated top to bottom and the first match wins, so the
// ordering here is the tie-break authority between overlapping patterns.
var rules = []rule{
	{prefixAll(isASCIIDigit), schema.UncommonTier, "Starts with nine digits"},
	{suffixAll(isASCIIDigit), schema.UncommonTier, "Ends with nine digits"},
	{containsLiteral(nineDigitsRun), schema.UncommonTier, "Contains nine continuous digits"},
	{prefixAll(isASCIILetter), schema.RareTier, "Starts with nine letters"},
	{suffixAll(isASCIILetter), schema.RareTier, "Ends with nine letters"},
	{containsLiteral(nineLettersRun), schema.RareTier, "Contains nine continuous letters"},
}

// Classify computes the rarity classification for a hash. It is a pure
// function of the hash string: the same input always yields the same
// classification regardless of surrounding commits.
func Classify(hash string) schema.RarityClassification {
	for _, r := range rules {
		if r.match(hash) {
			return schema.RarityClassification{
				Tier:        r.tier,
				Explanation: r.explanation,
				Frequency:   r.tier.Frequency(),
			}
		}
	}
	return schema.RarityClassification{
		Tier:      schema.CommonTier,
		Frequency: schema.CommonTier.Frequency(),
	}
}

// isASCIIDigit reports whether c is an ASCII decimal digit.
func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isASCIILetter reports whether c is an ASCII alphabetic character.
func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// prefixAll builds a predicate that checks the first patternWindow bytes
// of the hash against pred. Hashes shorter than the window are checked
// over their full length, so the predicate is vacuously true for short
// hashes. This matches the reference behavior and is covered by explicit
// tests rather than a minimum-length requirement.
func prefixAll(pred func(byte) bool) func(string) bool {
	return func(hash string) bool {
		n := min(patternWindow, len(hash))
		for i := range n {
			if !pred(hash[i]) {
				return false
			}
		}
		return true
	}
}

// suffixAll builds a predicate that checks the last patternWindow bytes
// of the hash against pred, with the same vacuous-truth behavior for
// short hashes as prefixAll.
func suffixAll(pred func(byte) bool) func(string) bool {
	return func(hash string) bool {
		n := min(patternWindow, len(hash))
		for i := len(hash) - n; i < len(hash); i++ {
			if !pred(hash[i]) {
				return false
			}
		}
		return true
	}
}

// containsLiteral builds a predicate matching a fixed substring anywhere
// in the hash.
func containsLiteral(sub string) func(string) bool {
	return func(hash string) bool {
		return strings.Contains(hash, sub)
	}
}
