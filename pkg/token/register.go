package token

import (
	"strings"
	"sync"
)

// registryMu guards the dynamic token maps. Registration typically happens
// at init() time in extension packages, but lookups can race with late
// registration in tests.
var registryMu sync.Mutex

// nextTokenID tracks the next available dynamic token ID.
// Dynamic tokens start after maxBuiltin (999).
var nextTokenID = maxBuiltin

// dynamicTokens maps registered dynamic tokens to their names.
var dynamicTokens = make(map[TokenType]string)

// dynamicKeywords maps registered dynamic keyword names to their token types.
var dynamicKeywords = make(map[string]TokenType)

// Register registers a new dynamic token with the given name and returns
// its token type. Registering the same name again returns the original
// token type. Statement extensions use this to add their keywords
// (MODEL, MODELS, ...) without touching the host token set.
//
// The name is kept as given for display; keyword lookup is
// case-insensitive.
func Register(name string) TokenType {
	registryMu.Lock()
	defer registryMu.Unlock()

	key := strings.ToLower(name)
	if t, ok := dynamicKeywords[key]; ok {
		return t
	}

	nextTokenID++
	t := nextTokenID

	dynamicTokens[t] = name
	dynamicKeywords[key] = t

	return t
}

// getDynamicName returns the name of a dynamic token.
func getDynamicName(t TokenType) (string, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name, ok := dynamicTokens[t]
	return name, ok
}

// LookupDynamicKeyword returns the token type for a dynamic keyword.
// Returns IDENT and false if the keyword is not registered.
// Lookup is case-insensitive.
func LookupDynamicKeyword(name string) (TokenType, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if tok, ok := dynamicKeywords[strings.ToLower(name)]; ok {
		return tok, true
	}
	return IDENT, false
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	registryMu.Lock()
	defer registryMu.Unlock()
	result := make(map[TokenType]string, len(dynamicTokens))
	for k, v := range dynamicTokens {
		result[k] = v
	}
	return result
}
