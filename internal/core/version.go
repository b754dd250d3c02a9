package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"tfgpu/internal/types"
)

// versionCache memoizes parsed PEP 440 versions and specifiers. Index
// results repeat the same dependency strings across many builds.
type versionCache struct {
	pep  map[string]pep440.Version
	spec map[string]pep440.Specifiers
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep:  map[string]pep440.Version{},
		spec: map[string]pep440.Specifiers{},
	}
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// pepSpec returns parsed PEP 440 specifiers, caching the result.
func (c *versionCache) pepSpec(value string) (pep440.Specifiers, error) {
	if parsed, ok := c.spec[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.NewSpecifiers(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	c.spec[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings. Returns 0
// on parse errors.
func (c *versionCache) compare(a string, b string) int {
	v1, err := c.pepVersion(a)
	if err != nil {
		return 0
	}
	v2, err := c.pepVersion(b)
	if err != nil {
		return 0
	}
	return v1.Compare(v2)
}

// admits reports whether version satisfies at least one alternative of
// the set. A set without alternatives admits every version.
func (c *versionCache) admits(set types.ConstraintSet, version string) (bool, error) {
	if len(set.Alternatives) == 0 {
		return true, nil
	}
	parsed, err := c.pepVersion(version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %s", version)).
			WithCause(err)
	}
	for _, alternative := range set.Alternatives {
		ok, err := c.satisfiesAll(parsed, alternative)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (c *versionCache) satisfiesAll(version pep440.Version, constraints []types.Constraint) (bool, error) {
	for _, constraint := range constraints {
		spec, err := c.pepSpec(toPep440Spec(constraint))
		if err != nil {
			return false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unsupported constraint: %s%s", constraint.Op, constraint.Version)).
				WithCause(err)
		}
		if !spec.Check(version) {
			return false, nil
		}
	}
	return true, nil
}

// lowerBound returns the smallest version any alternative of the set can
// be satisfied with. strict is true when the floor itself is excluded, as
// in ">11.0". bounded is false when some alternative has no lower bound at
// all.
func (c *versionCache) lowerBound(set types.ConstraintSet) (floor string, strict bool, bounded bool) {
	if len(set.Alternatives) == 0 {
		return "", false, false
	}
	lowest, lowestStrict := "", false
	for _, alternative := range set.Alternatives {
		altFloor, altStrict := "", false
		for _, constraint := range alternative {
			if !isLowerBound(constraint.Op) {
				continue
			}
			candidate := strings.TrimSuffix(constraint.Version, ".*")
			if _, err := c.pepVersion(candidate); err != nil {
				continue
			}
			excluded := constraint.Op == types.ConstraintOpGt
			switch {
			case altFloor == "" || c.compare(candidate, altFloor) > 0:
				altFloor, altStrict = candidate, excluded
			case c.compare(candidate, altFloor) == 0:
				altStrict = altStrict || excluded
			}
		}
		if altFloor == "" {
			return "", false, false
		}
		switch {
		case lowest == "" || c.compare(altFloor, lowest) < 0:
			lowest, lowestStrict = altFloor, altStrict
		case c.compare(altFloor, lowest) == 0:
			lowestStrict = lowestStrict && altStrict
		}
	}
	return lowest, lowestStrict, true
}

func isLowerBound(op types.ConstraintOp) bool {
	switch op {
	case types.ConstraintOpNone, types.ConstraintOpEq, types.ConstraintOpEq2,
		types.ConstraintOpGte, types.ConstraintOpGt, types.ConstraintOpCompat:
		return true
	default:
		return false
	}
}

// toPep440Spec converts a conda clause to a PEP 440 specifier string.
// Conda treats a bare version and "=" as a prefix match, so "10.1" and
// "=10.1" both become "== 10.1.*".
func toPep440Spec(constraint types.Constraint) string {
	version := constraint.Version
	switch constraint.Op {
	case types.ConstraintOpNone, types.ConstraintOpEq:
		if !strings.HasSuffix(version, ".*") {
			version += ".*"
		}
		return fmt.Sprintf("== %s", version)
	case types.ConstraintOpEq2, types.ConstraintOpNe:
		return fmt.Sprintf("%s %s", constraint.Op, version)
	default:
		return fmt.Sprintf("%s %s", constraint.Op, strings.TrimSuffix(version, ".*"))
	}
}
