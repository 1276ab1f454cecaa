package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleOption      Role = 1 << iota
	RoleInline           = 1 << iota // modifies RoleOption
	RoleNegated          = 1 << iota // modifies RoleOption
	RolePassthrough      = 1 << iota
	RoleTerminator       = 1 << iota
)

type Token struct {
	Arg string
	// Index is the position of Arg in the scanned argument vector
	Index int
	// RawName is the option name as written, after the "no-" prefix was removed
	// for negated options
	RawName string
	// Name is RawName with separator runs collapsed to "_"
	Name  string
	Value string
	// Role is sum of Role constants. Possible values:
	// RoleOption | RoleInline    // "--name=value", contains Value
	// RoleOption | RoleNegated   // "--no-name", implicit `false`
	// RoleOption                 // "--name", implicit `true`
	// RolePassthrough
	// RoleTerminator             // only if Args.WithTerminator(true)
	Role Role
}
