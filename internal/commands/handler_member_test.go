package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestAddMember(t *testing.T) {
	tests := map[string]struct {
		line      string
		expOut    string
		expErr    string
		expInList string
	}{
		"real player": {
			line:      "add Bob Rescue",
			expOut:    "player",
			expInList: "Per: Bob",
		},
		"faction by tag": {
			line:      "add MINE Rescue",
			expOut:    "faction",
			expInList: "Fac: MINE - Miners Guild",
		},
		"faction by multi-word name": {
			line:      "add Miners Guild Rescue",
			expOut:    "faction",
			expInList: "Fac: MINE - Miners Guild",
		},
		"bot rejected": {
			line:   "add Drone-7 Rescue",
			expErr: "not a real player",
		},
		"npc faction rejected": {
			line:   "add Pirates Rescue",
			expErr: "NPC-controlled",
		},
		"no match": {
			line:   "add Mallory Rescue",
			expErr: "no player or faction found",
		},
		"missing group": {
			line:   "add Bob Ghost",
			expErr: "no such group",
		},
		"usage": {
			line:   "add Bob",
			expErr: "usage",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _, _ := newTestHandler(t, true)
			mustExec(t, h, "addgroup Rescue")

			out, err := exec(t, h, tt.line)
			if tt.expErr != "" {
				assertUserError(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.expOut) {
				t.Errorf("expected output containing %q, got %q", tt.expOut, out)
			}
			if !strings.Contains(mustExec(t, h, "list Rescue"), tt.expInList) {
				t.Errorf("expected %q in group detail", tt.expInList)
			}
		})
	}
}

func TestAddMember_RejectedLeavesGroupUnchanged(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	mustExec(t, h, "addgroup Rescue")

	_, err := exec(t, h, "add Pirates Rescue")
	assertUserError(t, err, "NPC-controlled")

	out := mustExec(t, h, "list Rescue")
	if !strings.Contains(out, "(empty)") {
		t.Errorf("expected group to stay empty, got %q", out)
	}
}

func TestAddMember_Idempotent(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	mustExec(t, h, "addgroup Rescue")
	mustExec(t, h, "add Bob Rescue")

	out := mustExec(t, h, "add Bob Rescue")
	if !strings.Contains(out, "already in") {
		t.Errorf("unexpected output: %q", out)
	}
	testutil.AssertEqual(t, "single entry",
		strings.Count(mustExec(t, h, "list Rescue"), "Per: Bob"), 1)
}

func TestDeleteMember(t *testing.T) {
	setup := func(t *testing.T) *Handler {
		h, _, _ := newTestHandler(t, true)
		mustExec(t, h, "addgroup Rescue")
		mustExec(t, h, "add Bob Rescue")
		mustExec(t, h, "add MINE Rescue")
		return h
	}

	t.Run("delete without kind removes from both sets", func(t *testing.T) {
		h := setup(t)
		testutil.AssertEqual(t, "silent", mustExec(t, h, "delete Bob Rescue"), "")

		out := mustExec(t, h, "list Rescue")
		if strings.Contains(out, "Per: Bob") {
			t.Error("expected Bob removed")
		}
		if !strings.Contains(out, "Fac: MINE") {
			t.Error("expected faction untouched")
		}
	})

	t.Run("delete faction by canonical ref", func(t *testing.T) {
		h := setup(t)
		mustExec(t, h, "delete faction MINE - Miners Guild Rescue")

		out := mustExec(t, h, "list Rescue")
		if strings.Contains(out, "Fac: MINE") {
			t.Error("expected faction removed")
		}
		if !strings.Contains(out, "Per: Bob") {
			t.Error("expected person untouched")
		}
	})

	t.Run("delete person kind skips faction set", func(t *testing.T) {
		h := setup(t)
		// A person-kind removal of a faction ref must not touch it
		mustExec(t, h, "delete person MINE - Miners Guild Rescue")

		if !strings.Contains(mustExec(t, h, "list Rescue"), "Fac: MINE") {
			t.Error("expected faction untouched")
		}
	})

	t.Run("missing member or group is silent", func(t *testing.T) {
		h := setup(t)
		testutil.AssertEqual(t, "unknown member", mustExec(t, h, "delete Mallory Rescue"), "")
		testutil.AssertEqual(t, "unknown group", mustExec(t, h, "delete Bob Ghost"), "")
	})

	t.Run("usage", func(t *testing.T) {
		h := setup(t)
		_, err := exec(t, h, "delete Bob")
		assertUserError(t, err, "usage")
	})
}
