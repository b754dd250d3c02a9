package types

// MatchSpec is a parsed conda dependency string such as
// "python >=3.7,<3.8" or "cudatoolkit 10.1.* h1234_0".
type MatchSpec struct {
	Name    string
	Version string
	Build   string
	Raw     string
}

// Constraint is a single version clause of a match spec.
type Constraint struct {
	Op      ConstraintOp
	Version string
}

// ConstraintSet is a disjunction of conjunctions: "|" separates the
// alternatives, "," the clauses inside one alternative.
type ConstraintSet struct {
	Alternatives [][]Constraint
}
