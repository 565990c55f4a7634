package primejudge

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the classification of a judged number.
type Kind int

const (
	// Unjudged means no judgment is available for the current input.
	Unjudged Kind = iota
	// Invalid is returned for every number less than or equal to 1.
	Invalid
	// Prime is returned when no divisor up to the square root was found.
	Prime
	// Composite is returned together with the factors found.
	Composite
)

func (k Kind) String() string {
	switch k {
	case Unjudged:
		return "unjudged"
	case Invalid:
		return "invalid"
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Verdict holds the result of judging a single number.
// Factors is only populated for Composite verdicts.
type Verdict struct {
	Kind    Kind
	Input   int64
	Factors []int64
}

// FactorList renders the factors as a comma separated string.
func (v Verdict) FactorList() string {
	parts := make([]string, len(v.Factors))
	for i, f := range v.Factors {
		parts[i] = strconv.FormatInt(f, 10)
	}
	return strings.Join(parts, ", ")
}

// Message returns the headline shown for the verdict.
func (v Verdict) Message() string {
	switch v.Kind {
	case Invalid:
		return "Number must be greater than 1"
	case Prime:
		return fmt.Sprintf("%d is a prime number", v.Input)
	case Composite:
		return fmt.Sprintf("%d is a composite number", v.Input)
	}
	return "Click 'Judge' to check the number"
}
