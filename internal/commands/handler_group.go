package commands

import (
	"fmt"
)

// addGroup creates a new call group for the actor, creating their player
// record (with the default groups) on first use.
func (h *Handler) addGroup(actor *Actor, args []string) (string, error) {
	if len(args) != 1 {
		return "", NewUserError("usage: addgroup <group>")
	}
	groupName := args[0]

	if !h.reg.AddGroup(actor.Name, groupName, true) {
		return "", NewUserError(fmt.Sprintf("addgroup: %q already exists for player %s", groupName, actor.Name))
	}

	return fmt.Sprintf("addgroup: %q added for player %s", groupName, actor.Name), nil
}

// deleteGroup removes a call group. Removal is fire-and-forget: a missing
// player or group produces the same (empty) response as a successful delete.
func (h *Handler) deleteGroup(actor *Actor, args []string) (string, error) {
	if len(args) != 1 {
		return "", NewUserError("usage: delgroup <group>")
	}

	h.reg.RemoveGroup(actor.Name, args[0])
	return "", nil
}
