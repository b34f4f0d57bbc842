package commands

import (
	"context"
	"fmt"
)

// call resolves the group's online recipients and dispatches a distress
// notification carrying the actor's last reported position.
func (h *Handler) call(ctx context.Context, actor *Actor, args []string) (string, error) {
	if len(args) != 1 {
		return "", NewUserError("usage: call <group>")
	}
	group := args[0]

	recipients, ok := h.resolver.Resolve(actor.Name, group)
	if !ok {
		return "", NewUserError("call: no such player or group")
	}

	h.notifier.Dispatch(ctx, actor.Name, group, h.roster.Position(actor.Id), recipients)

	if len(recipients) == 0 {
		return fmt.Sprintf("call: nobody from %q is online", group), nil
	}
	return fmt.Sprintf("call: distress notification sent to %d player(s)", len(recipients)), nil
}
