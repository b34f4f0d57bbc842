package commands

import (
	"fmt"
	"strings"

	"github.com/jayph/distresscall/internal/registry"
)

// addMember classifies the named entity as a player or a faction and adds
// it to the group. Entity names may contain spaces; the final argument is
// the group.
func (h *Handler) addMember(actor *Actor, args []string) (string, error) {
	if len(args) < 2 {
		return "", NewUserError("usage: add <player|faction> <group>")
	}
	entity := strings.Join(args[:len(args)-1], " ")
	group := args[len(args)-1]

	status := h.reg.AddMember(actor.Name, group, entity)
	switch status {
	case registry.StatusAddedPerson:
		return fmt.Sprintf("add: player %q added to %q", entity, group), nil
	case registry.StatusAddedFaction:
		return fmt.Sprintf("add: faction %q added to %q", entity, group), nil
	case registry.StatusAlreadyPresent:
		return fmt.Sprintf("add: %q is already in %q", entity, group), nil
	case registry.StatusNoSuchGroup:
		return "", NewUserError(fmt.Sprintf("add: no such group: %s", group))
	case registry.StatusNoMatch:
		return "", NewUserError(fmt.Sprintf("add: no player or faction found with name or tag: %s", entity))
	case registry.StatusRejectedNPCFaction:
		return "", NewUserError(fmt.Sprintf("add: faction %q is NPC-controlled and cannot be added", entity))
	case registry.StatusRejectedBot:
		return "", NewUserError(fmt.Sprintf("add: %q is not a real player", entity))
	default:
		return "", fmt.Errorf("unexpected add member status: %v", status)
	}
}

// deleteMember removes a member from a group. An optional leading
// "faction" or "person" argument narrows which set is searched; without it
// both sets are tried, which is harmless on the set the member was never
// in. Removal is fire-and-forget like deleteGroup.
func (h *Handler) deleteMember(actor *Actor, args []string) (string, error) {
	kind := registry.KindAny
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "faction":
			kind = registry.KindFaction
			args = args[1:]
		case "person":
			kind = registry.KindPerson
			args = args[1:]
		}
	}

	if len(args) < 2 {
		return "", NewUserError("usage: delete [faction|person] <member> <group>")
	}
	member := strings.Join(args[:len(args)-1], " ")
	group := args[len(args)-1]

	h.reg.RemoveMember(actor.Name, group, registry.MemberRef{Kind: kind, Name: member})
	return "", nil
}
