package constants

// Persona is the role claim embedded in an access token; it scopes which
// endpoints the token may call.
const (
	PersonaUser  = "User"
	PersonaStaff = "Staff"
	PersonaCoach = "Coach"
)

// Grouped persona slices for route guards
var (
	AllPersonas = []string{PersonaUser, PersonaStaff, PersonaCoach}
	StaffOnly   = []string{PersonaStaff}
)

func IsValidPersona(p string) bool {
	switch p {
	case PersonaUser, PersonaStaff, PersonaCoach:
		return true
	}
	return false
}
