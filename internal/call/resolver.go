package call

import (
	"strings"

	"github.com/jayph/distresscall/internal/registry"
	"github.com/jayph/distresscall/internal/world"
)

// Recipient is a currently-online player eligible to receive a notification.
type Recipient struct {
	Id   string
	Name string
}

// GroupFinder looks up a call group snapshot.
type GroupFinder interface {
	FindGroup(playerName, groupName string) *registry.GroupEntry
}

// RosterView is the slice of the live roster the resolver needs.
type RosterView interface {
	ForEachOnline(fn func(charId string, ps *world.PlayerState))
	IsFactionMember(charId, tag string) bool
}

// Resolver turns static group membership into a concrete recipient set.
// Faction rosters and online status change continuously, so membership is
// re-derived on every call and never cached.
type Resolver struct {
	groups GroupFinder
	roster RosterView
}

func NewResolver(groups GroupFinder, roster RosterView) *Resolver {
	return &Resolver{
		groups: groups,
		roster: roster,
	}
}

// Resolve computes the distinct online recipients of the group. ok is false
// when the player or group does not exist; a group with no online members
// resolves to an empty, non-nil set. Faction entries are matched by tag
// only, parsed back out of the stored "TAG - Name" snapshot.
func (r *Resolver) Resolve(playerName, groupName string) ([]Recipient, bool) {
	g := r.groups.FindGroup(playerName, groupName)
	if g == nil {
		return nil, false
	}

	tags := make([]string, 0, len(g.Factions))
	for _, entry := range g.Factions {
		tags = append(tags, factionTag(entry))
	}

	recipients := []Recipient{}
	seen := map[string]bool{}

	r.roster.ForEachOnline(func(charId string, ps *world.PlayerState) {
		if seen[charId] {
			return
		}

		match := false
		for _, name := range g.Persons {
			if name == ps.Name {
				match = true
				break
			}
		}
		if !match {
			for _, tag := range tags {
				if r.roster.IsFactionMember(charId, tag) {
					match = true
					break
				}
			}
		}

		if match {
			seen[charId] = true
			recipients = append(recipients, Recipient{Id: charId, Name: ps.Name})
		}
	})

	return recipients, true
}

// factionTag extracts the tag from a canonical "TAG - Full Name" entry.
func factionTag(entry string) string {
	tag, _, _ := strings.Cut(entry, " - ")
	return tag
}
