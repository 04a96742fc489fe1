package variant

import "github.com/lunaticare/nativevariants/internal/attr"

// Selection tiers for the development binary. A strictly higher tier always
// replaces the current selection; within a tier the first-seen variant wins,
// which keeps the rule deterministic for any callback ordering.
const (
	tierNone = iota
	tierDebug
	tierSharedDebug
)

// DevelopmentBinarySelector picks the variant a plain build or run command
// targets by default: the cheapest one to iterate on. Non-optimized shared
// libraries relink fastest, so they beat non-optimized static ones, which
// beat everything else; optimized variants are never selected.
//
// It is an Enumerator listener and is safe to invoke any number of times
// from a single goroutine; selection is monotonic and idempotent.
type DevelopmentBinarySelector struct {
	selected *Variant
	tier     int
}

// NewDevelopmentBinarySelector returns a selector with nothing selected.
func NewDevelopmentBinarySelector() *DevelopmentBinarySelector {
	return &DevelopmentBinarySelector{}
}

// Consider offers a variant to the selector. Non-buildable and optimized
// variants never displace anything. This is a pure selection and cannot fail.
func (s *DevelopmentBinarySelector) Consider(v *Variant) {
	if tier := tierOf(v); tier > s.tier {
		s.selected = v
		s.tier = tier
	}
}

// Selected returns the current development binary, or nil if no eligible
// variant has been considered yet.
func (s *DevelopmentBinarySelector) Selected() *Variant {
	return s.selected
}

// tierOf ranks a variant for development use.
func tierOf(v *Variant) int {
	if !v.Buildable() || v.Attributes().Bool(attr.Optimized) {
		return tierNone
	}
	if v.Attributes().String(attr.Linkage) == "shared" {
		return tierSharedDebug
	}
	return tierDebug
}
