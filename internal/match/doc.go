// Package match ranks names by similarity for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
//   - Suggest: returns the closest names worth showing to a user
package match
