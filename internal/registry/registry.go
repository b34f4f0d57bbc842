package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jayph/distresscall/internal/world"
)

// Default call groups seeded for every new player.
const (
	GroupFriendly = "Friendly"
	GroupNeutral  = "Neutral"
)

// DatabaseStore is the persistence gateway for the registry document.
type DatabaseStore interface {
	Load() (*Database, bool, error)
	Save(*Database) error
}

// CharacterFinder resolves display names against the known character set,
// online or offline.
type CharacterFinder interface {
	FindCharacter(name string) (string, *world.Character)
}

// FactionFinder resolves names or tags against the live faction list.
type FactionFinder interface {
	FactionByNameOrTag(s string) *world.Faction
	IsEveryoneNPC(f *world.Faction) bool
}

// Registry owns the player -> group -> member hierarchy. Every mutation
// re-persists the whole database before returning; a persist failure is
// logged but does not roll back the in-memory change or fail the call.
type Registry struct {
	mu       sync.RWMutex
	db       *Database
	store    DatabaseStore
	chars    CharacterFinder
	factions FactionFinder
}

func NewRegistry(store DatabaseStore, chars CharacterFinder, factions FactionFinder) (*Registry, error) {
	db, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading distress call database: %w", err)
	}
	if !ok {
		db = &Database{}
		// Write the empty database so the file exists from first start
		if err := store.Save(db); err != nil {
			return nil, fmt.Errorf("initializing distress call database: %w", err)
		}
	}

	return &Registry{
		db:       db,
		store:    store,
		chars:    chars,
		factions: factions,
	}, nil
}

// FindPlayer returns a snapshot of the player's record, or nil if the name
// is empty or unknown.
func (r *Registry) FindPlayer(name string) *PlayerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.findPlayer(name)
	if p == nil {
		return nil
	}
	return p.clone()
}

// FindGroup returns a snapshot of the group, or nil if the player or group
// does not exist.
func (r *Registry) FindGroup(playerName, groupName string) *GroupEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g := r.findGroup(playerName, groupName)
	if g == nil {
		return nil
	}
	return g.clone()
}

// AddPlayer creates a record for the named player and seeds the Friendly
// and Neutral groups. Returns nil if the name is empty or already taken.
func (r *Registry) AddPlayer(name string) *PlayerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.addPlayer(name)
	if p == nil {
		return nil
	}
	return p.clone()
}

func (r *Registry) addPlayer(name string) *PlayerEntry {
	if name == "" || r.findPlayer(name) != nil {
		return nil
	}

	p := &PlayerEntry{Name: name}
	r.db.Players = append(r.db.Players, p)
	r.save()

	if !r.addGroup(name, GroupFriendly, false) || !r.addGroup(name, GroupNeutral, false) {
		return nil
	}

	return p
}

// AddGroup creates a group for the player. When createPlayer is set a
// missing player record is created first. Returns false if the player is
// missing (and createPlayer is unset) or the group already exists.
func (r *Registry) AddGroup(playerName, groupName string, createPlayer bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addGroup(playerName, groupName, createPlayer)
}

func (r *Registry) addGroup(playerName, groupName string, createPlayer bool) bool {
	if groupName == "" {
		return false
	}

	p := r.findPlayer(playerName)
	if p == nil {
		if !createPlayer {
			return false
		}
		p = r.addPlayer(playerName)
		if p == nil {
			return false
		}
	}

	if p.findGroup(groupName) != nil {
		return false
	}

	p.Groups = append(p.Groups, &GroupEntry{Name: groupName})
	r.save()

	return true
}

// RemoveGroup deletes the group. A missing player or group is a silent
// no-op; callers needing confirmation must re-query. The Friendly and
// Neutral defaults are not protected.
func (r *Registry) RemoveGroup(playerName, groupName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPlayer(playerName)
	if p == nil {
		return
	}

	for i, g := range p.Groups {
		if g.Name == groupName {
			p.Groups = append(p.Groups[:i], p.Groups[i+1:]...)
			r.save()
			return
		}
	}
}

// AddMember classifies entityName as a person or a faction and inserts it
// into the group. A name matching both a character and a faction is always
// classified as a person. Bots and NPC-only factions are rejected at
// insertion time; re-adding an existing member is a no-op success.
func (r *Registry) AddMember(playerName, groupName, entityName string) AddMemberStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.findGroup(playerName, groupName)
	if g == nil {
		return StatusNoSuchGroup
	}

	if _, c := r.chars.FindCharacter(entityName); c != nil {
		if !c.Real {
			return StatusRejectedBot
		}

		if contains(g.Persons, entityName) {
			return StatusAlreadyPresent
		}

		g.Persons = append(g.Persons, entityName)
		r.save()
		return StatusAddedPerson
	}

	f := r.factions.FactionByNameOrTag(entityName)
	if f == nil {
		return StatusNoMatch
	}
	if r.factions.IsEveryoneNPC(f) {
		return StatusRejectedNPCFaction
	}

	combo := CanonicalFactionRef(f)
	if contains(g.Factions, combo) {
		return StatusAlreadyPresent
	}

	g.Factions = append(g.Factions, combo)
	r.save()
	return StatusAddedFaction
}

// RemoveMember deletes the referenced member from the group. A missing
// player, group, or member is a silent no-op.
func (r *Registry) RemoveMember(playerName, groupName string, ref MemberRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.findGroup(playerName, groupName)
	if g == nil {
		return
	}

	var changed bool
	if ref.Kind == KindAny || ref.Kind == KindFaction {
		var ok bool
		g.Factions, ok = remove(g.Factions, ref.Name)
		changed = changed || ok
	}
	if ref.Kind == KindAny || ref.Kind == KindPerson {
		var ok bool
		g.Persons, ok = remove(g.Persons, ref.Name)
		changed = changed || ok
	}

	if changed {
		r.save()
	}
}

func (r *Registry) findPlayer(name string) *PlayerEntry {
	if name == "" {
		return nil
	}
	for _, p := range r.db.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (r *Registry) findGroup(playerName, groupName string) *GroupEntry {
	if playerName == "" || groupName == "" {
		return nil
	}
	p := r.findPlayer(playerName)
	if p == nil {
		return nil
	}
	return p.findGroup(groupName)
}

// save persists the whole database. Failure is logged and swallowed: the
// in-memory mutation stands and the operation still reports success.
func (r *Registry) save() {
	if err := r.store.Save(r.db); err != nil {
		slog.Error("saving distress call database", "error", err)
	}
}

// CanonicalFactionRef is the denormalized snapshot string a faction is
// stored under: "TAG - Full Name".
func CanonicalFactionRef(f *world.Faction) string {
	return f.Tag + " - " + f.Name
}
