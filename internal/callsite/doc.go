// Package callsite resolves the literal argument text of the invocation
// that sits a given number of frames up the call stack. Resolution prefers
// the parsed call index and degrades to raw-text scanning when the
// caller's file does not parse; both outcomes carry the same error
// taxonomy, so the facade can always fall back to placeholder labels.
package callsite
