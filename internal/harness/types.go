package harness

// Emission is one recorded solution emission: the rendered board rows
// plus the counters at the moment of emission.
type Emission struct {
	Board    []string `json:"board" yaml:"board"`
	Explored int64    `json:"explored" yaml:"explored"`
	Queued   int      `json:"queued" yaml:"queued"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	Pass bool `json:"pass"`

	// Emissions holds the recorded solution sequence, in order,
	// truncated at the scenario's limit if one is set.
	Emissions []Emission `json:"emissions"`

	// Exhausted is true when the search drained its frontier (the
	// emission limit was not hit first).
	Exhausted bool `json:"exhausted"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:      true,
		Emissions: []Emission{},
	}
}

// AddError adds an expectation failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
