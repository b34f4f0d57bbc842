package call

import (
	"testing"

	"github.com/jayph/distresscall/internal/registry"
	"github.com/jayph/distresscall/internal/world"
	"github.com/pixil98/go-testutil"
)

type mockGroupFinder struct {
	groups map[string]*registry.GroupEntry // key: player/group
}

func (m *mockGroupFinder) FindGroup(playerName, groupName string) *registry.GroupEntry {
	return m.groups[playerName+"/"+groupName]
}

type mockRosterView struct {
	online   []*world.PlayerState
	factions map[string]string // charId -> faction tag
}

func (m *mockRosterView) ForEachOnline(fn func(charId string, ps *world.PlayerState)) {
	for _, ps := range m.online {
		fn(ps.CharId, ps)
	}
}

func (m *mockRosterView) IsFactionMember(charId, tag string) bool {
	return m.factions[charId] == tag
}

func TestResolver_Resolve(t *testing.T) {
	group := &registry.GroupEntry{
		Name:     "Rescue",
		Factions: []string{"MINE - Miners Guild"},
		Persons:  []string{"Bob"},
	}

	tests := map[string]struct {
		player   string
		group    string
		online   []*world.PlayerState
		factions map[string]string
		expOk    bool
		expIds   []string
	}{
		"missing group": {
			player: "Alice", group: "NoSuch",
			expOk: false,
		},
		"missing player": {
			player: "Nobody", group: "Rescue",
			expOk: false,
		},
		"nobody online resolves to empty set": {
			player: "Alice", group: "Rescue",
			expOk:  true,
			expIds: []string{},
		},
		"person match by display name": {
			player: "Alice", group: "Rescue",
			online: []*world.PlayerState{
				{CharId: "bob", Name: "Bob"},
				{CharId: "mallory", Name: "Mallory"},
			},
			expOk:  true,
			expIds: []string{"bob"},
		},
		"faction match by tag": {
			player: "Alice", group: "Rescue",
			online: []*world.PlayerState{
				{CharId: "carol", Name: "Carol"},
			},
			factions: map[string]string{"carol": "MINE"},
			expOk:    true,
			expIds:   []string{"carol"},
		},
		"member of both sets counted once": {
			player: "Alice", group: "Rescue",
			online: []*world.PlayerState{
				{CharId: "bob", Name: "Bob"},
			},
			factions: map[string]string{"bob": "MINE"},
			expOk:    true,
			expIds:   []string{"bob"},
		},
		"other faction not included": {
			player: "Alice", group: "Rescue",
			online: []*world.PlayerState{
				{CharId: "carol", Name: "Carol"},
			},
			factions: map[string]string{"carol": "SPRT"},
			expOk:    true,
			expIds:   []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			groups := &mockGroupFinder{groups: map[string]*registry.GroupEntry{
				"Alice/Rescue": group,
			}}
			roster := &mockRosterView{online: tt.online, factions: tt.factions}

			recipients, ok := NewResolver(groups, roster).Resolve(tt.player, tt.group)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)

			if !tt.expOk {
				if recipients != nil {
					t.Errorf("expected nil recipients, got %v", recipients)
				}
				return
			}

			if recipients == nil {
				t.Fatal("expected non-nil recipient set")
			}
			testutil.AssertEqual(t, "recipient count", len(recipients), len(tt.expIds))
			got := map[string]bool{}
			for _, r := range recipients {
				got[r.Id] = true
			}
			for _, id := range tt.expIds {
				if !got[id] {
					t.Errorf("expected recipient %s", id)
				}
			}
		})
	}
}

func TestFactionTag(t *testing.T) {
	tests := map[string]struct {
		entry string
		exp   string
	}{
		"canonical entry":        {entry: "MINE - Miners Guild", exp: "MINE"},
		"name containing dashes": {entry: "MINE - Rock - Paper Co", exp: "MINE"},
		"bare tag":               {entry: "MINE", exp: "MINE"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "tag", factionTag(tt.entry), tt.exp)
		})
	}
}
