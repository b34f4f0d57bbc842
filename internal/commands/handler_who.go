package commands

import (
	"sort"
	"strings"

	"github.com/jayph/distresscall/internal/world"
)

// who lists everyone currently online.
func (h *Handler) who() string {
	var names []string
	h.roster.ForEachOnline(func(_ string, ps *world.PlayerState) {
		names = append(names, ps.Name)
	})
	sort.Strings(names)

	if len(names) == 0 {
		return "Nobody is online."
	}
	return "Players online:\n  " + strings.Join(names, "\n  ")
}
