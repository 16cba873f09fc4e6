// SPDX-License-Identifier: MPL-2.0

package matrix

import (
	"slices"
	"strings"

	"github.com/torwald-sergesson/runtests/internal/issue"
	"github.com/torwald-sergesson/runtests/internal/venv"
)

// SelectorAll expands to the full descriptor set in canonical order.
const SelectorAll = "all"

// DescriptorSet is the canonical ordered list of selectable environment
// identifiers: the python runtime versions the suite is expected to pass
// on. Install/uninstall additionally accept arbitrary concrete ids.
var DescriptorSet = []string{"26", "27", "33", "34"}

// ResolveSelector expands a selector into the ordered sequence of
// environment identifiers to iterate. "all" yields the full descriptor set
// in canonical order; a comma-separated list expands positionally,
// preserving order and duplicates as given; "default" (or an empty
// selector) yields the single no-switch pseudo identifier.
func ResolveSelector(selector string) []string {
	switch selector {
	case "", venv.DefaultID:
		return []string{venv.DefaultID}
	case SelectorAll:
		return slices.Clone(DescriptorSet)
	}

	var ids []string
	for _, part := range strings.Split(selector, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []string{venv.DefaultID}
	}
	return ids
}

// LifecycleIdentifiers resolves a selector for install/uninstall, which
// require concrete identifiers: the sentinels "default" and "all" are
// rejected before any side effect occurs.
func LifecycleIdentifiers(selector string) ([]string, error) {
	switch selector {
	case "", venv.DefaultID, SelectorAll:
		return nil, issue.NewConfigurationError(
			"resolve environment selector",
			"install/uninstall require concrete environment identifiers, not \""+selector+"\"",
		)
	}

	ids := ResolveSelector(selector)
	for _, id := range ids {
		if id == venv.DefaultID || id == SelectorAll {
			return nil, issue.NewConfigurationError(
				"resolve environment selector",
				"identifier list may not contain \""+id+"\"",
			)
		}
	}
	return ids, nil
}
