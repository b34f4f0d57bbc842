package registry

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Database is the whole distress call database, persisted as one document.
//
// Structure:
//
//	players
//	    groups
//	        factions
//	        persons
//
// Order of players, groups, and members is preserved for display.
type Database struct {
	Players []*PlayerEntry `json:"players"`
}

func (d *Database) Validate() error {
	el := errors.NewErrorList()

	seen := map[string]bool{}
	for i, p := range d.Players {
		if p == nil {
			el.Add(fmt.Errorf("player %d: not set", i))
			continue
		}
		if seen[p.Name] {
			el.Add(fmt.Errorf("duplicate player name: %s", p.Name))
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			el.Add(fmt.Errorf("player %q: %w", p.Name, err))
		}
	}

	return el.Err()
}

// PlayerEntry holds one player's call groups, keyed by case-sensitive
// display name.
type PlayerEntry struct {
	Name   string        `json:"name"`
	Groups []*GroupEntry `json:"groups"`
}

func (p *PlayerEntry) Validate() error {
	el := errors.NewErrorList()

	if p.Name == "" {
		el.Add(fmt.Errorf("player name not set"))
	}

	seen := map[string]bool{}
	for i, g := range p.Groups {
		if g == nil {
			el.Add(fmt.Errorf("group %d: not set", i))
			continue
		}
		if seen[g.Name] {
			el.Add(fmt.Errorf("duplicate group name: %s", g.Name))
		}
		seen[g.Name] = true
		if err := g.Validate(); err != nil {
			el.Add(fmt.Errorf("group %q: %w", g.Name, err))
		}
	}

	return el.Err()
}

func (p *PlayerEntry) findGroup(name string) *GroupEntry {
	for _, g := range p.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (p *PlayerEntry) clone() *PlayerEntry {
	c := &PlayerEntry{Name: p.Name, Groups: make([]*GroupEntry, len(p.Groups))}
	for i, g := range p.Groups {
		c.Groups[i] = g.clone()
	}
	return c
}

// GroupEntry is one named call group. Factions hold canonical "TAG - Name"
// snapshot strings, Persons hold display names. Both are deduplicated.
type GroupEntry struct {
	Name     string   `json:"name"`
	Factions []string `json:"factions"`
	Persons  []string `json:"persons"`
}

func (g *GroupEntry) Validate() error {
	el := errors.NewErrorList()

	if g.Name == "" {
		el.Add(fmt.Errorf("group name not set"))
	}
	el.Add(validateUnique("faction", g.Factions))
	el.Add(validateUnique("person", g.Persons))

	return el.Err()
}

func (g *GroupEntry) clone() *GroupEntry {
	c := &GroupEntry{Name: g.Name}
	c.Factions = append(c.Factions, g.Factions...)
	c.Persons = append(c.Persons, g.Persons...)
	return c
}

func validateUnique(kind string, entries []string) error {
	el := errors.NewErrorList()

	seen := map[string]bool{}
	for _, e := range entries {
		if e == "" {
			el.Add(fmt.Errorf("empty %s entry", kind))
		}
		if seen[e] {
			el.Add(fmt.Errorf("duplicate %s entry: %s", kind, e))
		}
		seen[e] = true
	}

	return el.Err()
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) ([]string, bool) {
	for i, e := range list {
		if e == s {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
