package world

import (
	"sync"

	"github.com/jayph/distresscall/internal/storage"
)

// PlayerState is the live state of one online player.
type PlayerState struct {
	CharId   string
	Name     string
	Position Position
}

// Roster is the single source of truth for who is online right now. The
// character and faction stores describe everyone the server knows about;
// the online set changes as sessions come and go, so callers must always
// query at the moment they care, never cache.
type Roster struct {
	mu         sync.RWMutex
	characters storage.Storer[*Character]
	factions   storage.Storer[*Faction]
	online     map[string]*PlayerState
}

func NewRoster(characters storage.Storer[*Character], factions storage.Storer[*Faction]) *Roster {
	return &Roster{
		characters: characters,
		factions:   factions,
		online:     make(map[string]*PlayerState),
	}
}

// FindCharacter looks up a known character (online or offline) by exact,
// case-sensitive display name. The returned id is the store key.
func (r *Roster) FindCharacter(name string) (string, *Character) {
	for id, c := range r.characters.GetAll() {
		if c.Name == name {
			return id, c
		}
	}
	return "", nil
}

// Character returns the character for a store id, or nil.
func (r *Roster) Character(id string) *Character {
	return r.characters.Get(id)
}

// FactionByTag returns the live faction with the given tag, or nil.
func (r *Roster) FactionByTag(tag string) *Faction {
	for _, f := range r.factions.GetAll() {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// FactionByNameOrTag matches a faction by exact full name first, then by tag.
func (r *Roster) FactionByNameOrTag(s string) *Faction {
	var byTag *Faction
	for _, f := range r.factions.GetAll() {
		if f.Name == s {
			return f
		}
		if f.Tag == s {
			byTag = f
		}
	}
	return byTag
}

// IsEveryoneNPC reports whether the faction has no real members. A faction
// nobody real belongs to is treated as NPC-only, including an empty one.
func (r *Roster) IsEveryoneNPC(f *Faction) bool {
	for _, c := range r.characters.GetAll() {
		if c.Faction == f.Tag && c.Real {
			return false
		}
	}
	return true
}

// IsFactionMember reports whether the character with the given id belongs
// to the faction with the given tag.
func (r *Roster) IsFactionMember(charId, tag string) bool {
	c := r.characters.Get(charId)
	return c != nil && c.Faction == tag
}

// Join marks a character as online.
func (r *Roster) Join(charId string) error {
	c := r.characters.Get(charId)
	if c == nil {
		return ErrPlayerNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.online[charId]; ok {
		return ErrPlayerExists
	}

	r.online[charId] = &PlayerState{
		CharId: charId,
		Name:   c.Name,
	}
	return nil
}

// Leave marks a character as offline. Unknown ids are ignored.
func (r *Roster) Leave(charId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.online, charId)
}

// IsOnline reports whether the character is currently connected.
func (r *Roster) IsOnline(charId string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.online[charId]
	return ok
}

// SetPosition updates a player's last reported coordinate.
func (r *Roster) SetPosition(charId string, pos Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ps, ok := r.online[charId]
	if !ok {
		return ErrPlayerNotFound
	}
	ps.Position = pos
	return nil
}

// Position returns a player's last reported coordinate. Offline players
// report the zero position.
func (r *Roster) Position(charId string) Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ps, ok := r.online[charId]; ok {
		return ps.Position
	}
	return Position{}
}

// ForEachOnline calls fn for each online player while holding the lock.
func (r *Roster) ForEachOnline(fn func(charId string, ps *PlayerState)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, ps := range r.online {
		fn(id, ps)
	}
}
