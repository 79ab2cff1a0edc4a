// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import "strings"

// Render is the inverse of [Tokenize]: it re-serializes an ordered token
// sequence into a command line that, when re-tokenized, reproduces the
// same tokens. A token that already looks like a brace-balanced JSON
// envelope is emitted bare; any other token containing whitespace or
// punctuation outside the bare charset is double-quoted, with embedded
// quotes escaped by dropping them (the quoted grammar has no escape
// sequence, so a literal `"` cannot round-trip and is stripped).
func Render(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = renderToken(tok)
	}
	return strings.Join(parts, " ")
}

func renderToken(tok string) string {
	if strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}") {
		return tok
	}
	if isBareToken(tok) {
		return tok
	}
	return `"` + strings.ReplaceAll(tok, `"`, "") + `"`
}

func isBareToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r == ' ' || !bareRune(r) {
			return false
		}
	}
	return true
}
