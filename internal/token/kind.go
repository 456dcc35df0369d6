package token

// Kind represents the category of a pattern token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the pattern.
	EOF
	// Chunk is a run of literal bytes with escapes already resolved.
	Chunk
	// LBrace represents `{`, opening an alternation group.
	LBrace
	// RBrace represents `}`, closing an alternation group.
	RBrace
	// Comma separates alternatives inside a group.
	Comma
	// DotDot represents `..` inside a group, the range separator.
	DotDot
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Chunk:
		return "Chunk"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case Comma:
		return "Comma"
	case DotDot:
		return "DotDot"
	}
	return "Invalid"
}
