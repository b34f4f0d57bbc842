package commands

import (
	"fmt"
	"strconv"

	"github.com/jayph/distresscall/internal/world"
)

// setPosition updates the actor's reported coordinate. In a full host
// integration positions stream in from the game engine; this command is
// the standalone surface for the same update.
func (h *Handler) setPosition(actor *Actor, args []string) (string, error) {
	if len(args) != 3 {
		return "", NewUserError("usage: setpos <x> <y> <z>")
	}

	var coords [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", NewUserError(fmt.Sprintf("setpos: %q is not a valid number", arg))
		}
		coords[i] = v
	}

	pos := world.Position{X: coords[0], Y: coords[1], Z: coords[2]}
	if err := h.roster.SetPosition(actor.Id, pos); err != nil {
		return "", fmt.Errorf("updating position: %w", err)
	}

	return fmt.Sprintf("position set to %g, %g, %g", pos.X, pos.Y, pos.Z), nil
}
