package bookmark

// Dialect selects the output line format.
type Dialect string

const (
	// DialectLF renders lf file manager keybindings.
	DialectLF Dialect = "lf"
	// DialectZsh renders zsh named directories.
	DialectZsh Dialect = "zsh"
	// DialectCdAlias renders shell cd aliases.
	DialectCdAlias Dialect = "cd-alias"
)

// Dialects lists every supported dialect in display order.
func Dialects() []Dialect {
	return []Dialect{DialectLF, DialectZsh, DialectCdAlias}
}

// Valid reports whether d is one of the supported dialects.
func (d Dialect) Valid() bool {
	switch d {
	case DialectLF, DialectZsh, DialectCdAlias:
		return true
	}
	return false
}

