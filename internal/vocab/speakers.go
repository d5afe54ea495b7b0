// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

// Role says which side of the air-to-ground loop a speaker is on. It decides
// how pronouns are resolved and where an event takes place.
type Role int

const (
	RoleUnknown Role = iota
	RoleCrew
	RoleGround
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleCrew:
		return "crew"
	case RoleGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Speaker is a transcript call sign and the resource it stands for.
type Speaker struct {
	Code string
	IRI  string
	Role Role
}

var speakersByCode = map[string]Speaker{
	"CDR": {Code: "CDR", IRI: Lovell, Role: RoleCrew},
	"LMP": {Code: "LMP", IRI: Haise, Role: RoleCrew},
	"CMP": {Code: "CMP", IRI: Swigert, Role: RoleCrew},
	"CC":  {Code: "CC", IRI: MCC, Role: RoleGround},
	"SC":  {Code: "SC", IRI: Unidentified, Role: RoleUnknown},
}

// SpeakerByCode returns the speaker for a transcript call sign.
func SpeakerByCode(code string) (Speaker, bool) {
	s, ok := speakersByCode[code]
	return s, ok
}

// SpeakerByIRI returns the speaker whose resource is iri. Each code has its
// own IRI, so the lookup is unambiguous.
func SpeakerByIRI(iri string) (Speaker, bool) {
	for _, s := range speakersByCode {
		if s.IRI == iri {
			return s, true
		}
	}
	return Speaker{}, false
}

// PlaceOf returns where a speaker of the given role is located, or "" when
// the role is unknown.
func PlaceOf(r Role) string {
	switch r {
	case RoleCrew:
		return Apollo13
	case RoleGround:
		return MCC
	default:
		return ""
	}
}
