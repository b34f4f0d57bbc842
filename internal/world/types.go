package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Character is a known identity on the server, online or not. Real
// distinguishes human-controlled characters from bots and NPCs.
type Character struct {
	Name    string `json:"name"`
	Real    bool   `json:"real"`
	Faction string `json:"faction,omitempty"` // faction tag, empty if unaffiliated
}

func (c *Character) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("character name not set"))
	}

	return el.Err()
}

// Faction is a named organization characters can belong to. Membership is
// derived from each character's faction tag rather than stored on the
// faction itself.
type Faction struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

func (f *Faction) Validate() error {
	el := errors.NewErrorList()

	if f.Tag == "" {
		el.Add(fmt.Errorf("faction tag not set"))
	}
	if f.Name == "" {
		el.Add(fmt.Errorf("faction name not set"))
	}

	return el.Err()
}

// Position is a world coordinate forwarded into distress notifications.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
