package commands

import (
	"fmt"
	"strings"

	"github.com/jayph/distresscall/internal/display"
)

// list shows all of the actor's groups, or the members of one group when a
// name is given. Listing stays available while the rest of the surface is
// disabled.
func (h *Handler) list(actor *Actor, args []string) (string, error) {
	if len(args) > 1 {
		return "", NewUserError("usage: list [group]")
	}

	if len(args) == 1 {
		return h.listGroup(actor, args[0])
	}

	p := h.reg.FindPlayer(actor.Name)
	if p == nil {
		return "", NewUserError("list: no player record found")
	}

	lines := make([]string, 0, len(p.Groups))
	for _, g := range p.Groups {
		lines = append(lines, display.Wrap(fmt.Sprintf("%s: Factions: %s; Persons: %s",
			g.Name, display.JoinNames(g.Factions), display.JoinNames(g.Persons))))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) listGroup(actor *Actor, groupName string) (string, error) {
	g := h.reg.FindGroup(actor.Name, groupName)
	if g == nil {
		return "", NewUserError(fmt.Sprintf("list: no such group: %s", groupName))
	}

	lines := []string{g.Name + ":"}
	for _, f := range g.Factions {
		lines = append(lines, "  Fac: "+f)
	}
	for _, p := range g.Persons {
		lines = append(lines, "  Per: "+p)
	}
	if len(lines) == 1 {
		lines = append(lines, "  (empty)")
	}
	return strings.Join(lines, "\n"), nil
}
