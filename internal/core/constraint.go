package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tfgpu/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpCompat,
	types.ConstraintOpNe,
	types.ConstraintOpEq2,
	types.ConstraintOpEq,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// ParseMatchSpec splits a conda dependency string into name, version
// and build fields. Missing fields are left empty.
func ParseMatchSpec(raw string) types.MatchSpec {
	fields := strings.Fields(raw)
	spec := types.MatchSpec{Raw: raw}
	if len(fields) > 0 {
		spec.Name = fields[0]
	}
	if len(fields) > 1 {
		spec.Version = fields[1]
	}
	if len(fields) > 2 {
		spec.Build = fields[2]
	}
	return spec
}

// ParseConstraintSet parses the version field of a match spec. An empty
// or "*" version yields a set without alternatives, which admits
// everything.
func ParseConstraintSet(version string) (types.ConstraintSet, error) {
	version = strings.TrimSpace(version)
	if version == "" || version == "*" {
		return types.ConstraintSet{}, nil
	}
	var set types.ConstraintSet
	for _, alternative := range strings.Split(version, "|") {
		var clauses []types.Constraint
		for _, raw := range strings.Split(alternative, ",") {
			clause, err := ParseConstraint(raw)
			if err != nil {
				return types.ConstraintSet{}, err
			}
			if clause.Op == types.ConstraintOpNone && clause.Version == "" {
				continue
			}
			clauses = append(clauses, clause)
		}
		if len(clauses) == 0 {
			// "*" inside an alternative: that alternative admits all.
			return types.ConstraintSet{}, nil
		}
		set.Alternatives = append(set.Alternatives, clauses)
	}
	return set, nil
}

// ParseConstraint parses one clause such as ">=3.7" or "10.1.*". A bare
// version keeps ConstraintOpNone.
func ParseConstraint(raw string) (types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty constraint")
	}
	if raw == "*" {
		return types.Constraint{Op: types.ConstraintOpNone}, nil
	}
	for _, op := range opTokens {
		if strings.HasPrefix(raw, string(op)) {
			version := strings.TrimSpace(strings.TrimPrefix(raw, string(op)))
			if version == "" {
				return types.Constraint{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid constraint: %s", raw))
			}
			return types.Constraint{Op: op, Version: version}, nil
		}
	}
	return types.Constraint{Op: types.ConstraintOpNone, Version: raw}, nil
}
