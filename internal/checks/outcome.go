// SPDX-License-Identifier: MPL-2.0

package checks

import "strconv"

type (
	// Outcome represents the integer result of one check invocation.
	// The zero value (0) means success; any positive value means failure.
	// Magnitude carries no meaning beyond "nonzero".
	Outcome int
)

// OutcomeFailure is the generic failure outcome used when a collaborator
// could not be invoked at all (as opposed to running and failing).
const OutcomeFailure Outcome = 1

// IsSuccess returns true if the outcome indicates a successful check.
func (o Outcome) IsSuccess() bool { return o == 0 }

// String returns the decimal string representation of the Outcome.
func (o Outcome) String() string { return strconv.Itoa(int(o)) }
