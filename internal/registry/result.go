package registry

// AddMemberStatus reports what AddMember did, distinguishing the reasons a
// member was not inserted. Callers that only care about success can use Ok().
type AddMemberStatus int

const (
	StatusAddedPerson AddMemberStatus = iota
	StatusAddedFaction
	StatusAlreadyPresent
	StatusNoSuchGroup
	StatusNoMatch
	StatusRejectedNPCFaction
	StatusRejectedBot
)

// Ok reports whether the member ended up in the group: idempotent re-adds
// count as success.
func (s AddMemberStatus) Ok() bool {
	switch s {
	case StatusAddedPerson, StatusAddedFaction, StatusAlreadyPresent:
		return true
	}
	return false
}

func (s AddMemberStatus) String() string {
	switch s {
	case StatusAddedPerson:
		return "added person"
	case StatusAddedFaction:
		return "added faction"
	case StatusAlreadyPresent:
		return "already present"
	case StatusNoSuchGroup:
		return "no such group"
	case StatusNoMatch:
		return "no match"
	case StatusRejectedNPCFaction:
		return "rejected npc faction"
	case StatusRejectedBot:
		return "rejected bot"
	}
	return "unknown"
}

// MemberKind says which member set a removal targets. KindAny removes the
// name from both sets, which is harmless on the set it was never in.
type MemberKind int

const (
	KindAny MemberKind = iota
	KindFaction
	KindPerson
)

// MemberRef names a member to remove.
type MemberRef struct {
	Kind MemberKind
	Name string
}
