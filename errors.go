package acttrie

import "errors"

// Most failure modes here are reported through booleans and counts, not
// errors (allocation failure is not modeled; Go panics on OOM,
// duplicate insertion and key-not-found are ordinary negative results).
// These sentinels cover the remaining surface: iterator misuse and
// construction-option conflicts.
var (
	// ErrExhaustedIterator is the panic value raised by operations that
	// require a live position or iterator state (Position.Key,
	// Position.Value, Position.SetValue, Iterator.Key, Iterator.Value,
	// and the PrefixIterator equivalents) when called on the end/
	// exhausted position.
	ErrExhaustedIterator = errors.New("acttrie: operation on exhausted iterator")

	// ErrInvalidSizePolicy is returned by validatePolicy for a nil or
	// malformed SizePolicy, and is the value New panics with when an
	// Option configures such a policy.
	ErrInvalidSizePolicy = errors.New("acttrie: invalid size policy")
)

// validatePolicy reports ErrInvalidSizePolicy if p cannot be used to
// build a Trie: it must be non-nil, name at least one tier, and name an
// initial capacity that is actually one of its tiers.
func validatePolicy(p *SizePolicy) error {
	if p == nil || len(p.tiers) == 0 {
		return ErrInvalidSizePolicy
	}
	for _, tier := range p.tiers {
		if tier.capacity == p.initial {
			return nil
		}
	}
	return ErrInvalidSizePolicy
}
