package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of statusers
// and returns the first one that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

var statusStrings = map[Status]string{
	Continue:          "Continue",
	FunctionAbsTol:    "FunctionAbsTol",
	BoundsConverged:   "BoundsConverged",
	SolverError:       "SolverError",
	Diverged:          "Diverged",
	MaximumIterations: "MaximumIterations",
}

// Status is a type for expressing if the solver has finished or not.
// Zero signifies the solver should continue.
// Positive values indicate successful convergence,
// negative values signify the solver stopped without meeting a tolerance.
// MaximumIterations is negative but is a normal termination, not an error.
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if the status denotes a met tolerance
func (s Status) Converged() bool {
	return s > Continue
}

// MarshalText lets a Status appear by name in JSON and YAML output
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	Continue Status = iota
	FunctionAbsTol
	BoundsConverged
)

const (
	_                 = iota
	SolverError Status = -1 * iota
	Diverged
	MaximumIterations
)
