// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/torwald-sergesson/runtests/internal/matrix"
)

// renderBanner formats the final colored success/failure banner. Per-check
// detail is whatever the collaborators printed; the banner only summarizes
// the aggregate.
func renderBanner(s *matrix.Summary) string {
	if s.Interrupted {
		return WarningStyle.Render("INTERRUPTED") +
			fmt.Sprintf(" %s stopped after %d environment(s), aggregate exit %s",
				s.Task, len(s.Environments), s.Total)
	}
	if s.Total.IsSuccess() {
		return SuccessStyle.Render("SUCCESS") +
			fmt.Sprintf(" %s passed in %d environment(s)", s.Task, len(s.Environments))
	}
	return ErrorStyle.Render("FAILURE") +
		fmt.Sprintf(" %s failed in %d of %d environment(s), aggregate exit %s",
			s.Task, s.Failures, len(s.Environments), s.Total)
}
