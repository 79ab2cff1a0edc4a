// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import "strings"

// Verb is a recognized post-auth command keyword (spec §4.5). Verb
// matching is case-insensitive; [Verb] of a token normalizes to upper
// case.
type Verb string

const (
	VerbSend      Verb = "SEND"
	VerbTo        Verb = "TO"
	VerbExit      Verb = "EXIT"
	VerbGetUsers  Verb = "GETUSERS"
	VerbHelp      Verb = "HELP"
	VerbPubKey    Verb = "PUBKEY"
	VerbGetKey    Verb = "GETKEY"
	VerbGetSalt   Verb = "GET_SALT"
	VerbUnknown   Verb = ""
)

// verbSet is the closed vocabulary of recognized verbs; anything else is
// reported as VerbUnknown by [ParseVerb].
var verbSet = map[string]Verb{
	string(VerbSend):     VerbSend,
	string(VerbTo):       VerbTo,
	string(VerbExit):     VerbExit,
	string(VerbGetUsers): VerbGetUsers,
	string(VerbHelp):     VerbHelp,
	string(VerbPubKey):   VerbPubKey,
	string(VerbGetKey):   VerbGetKey,
	string(VerbGetSalt):  VerbGetSalt,
}

// ParseVerb normalizes tok and reports the matching [Verb], or
// VerbUnknown if tok is not in the recognized vocabulary.
func ParseVerb(tok string) Verb {
	if v, ok := verbSet[strings.ToUpper(tok)]; ok {
		return v
	}
	return VerbUnknown
}
