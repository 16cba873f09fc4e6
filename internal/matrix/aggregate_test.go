// SPDX-License-Identifier: MPL-2.0

package matrix

import (
	"testing"

	"github.com/torwald-sergesson/runtests/internal/checks"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcomes []checks.Outcome
		want     checks.Outcome
	}{
		{name: "empty", outcomes: nil, want: 0},
		{name: "all zero", outcomes: []checks.Outcome{0, 0, 0}, want: 0},
		{name: "one failure", outcomes: []checks.Outcome{0, 1, 0}, want: 1},
		{name: "sum of failures", outcomes: []checks.Outcome{2, 3}, want: 5},
		{name: "failures never cancel out", outcomes: []checks.Outcome{1, 1, 1}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var total checks.Outcome
			for _, o := range tt.outcomes {
				total = Aggregate(total, o)
			}
			if total != tt.want {
				t.Errorf("aggregate = %d, want %d", total, tt.want)
			}
			if total.IsSuccess() != (tt.want == 0) {
				t.Errorf("IsSuccess() = %v inconsistent with want %d", total.IsSuccess(), tt.want)
			}
		})
	}
}
