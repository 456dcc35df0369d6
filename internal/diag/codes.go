package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo           Code = 1000
	LexTrailingEscape Code = 1001

	// Синтаксические
	SynInfo            Code = 2000
	SynEmptyPattern    Code = 2001
	SynUnbalancedOpen  Code = 2002
	SynUnbalancedClose Code = 2003
	SynRangeEndpoint   Code = 2004
	SynRangeMissingEnd Code = 2005
	SynRangeDescending Code = 2006
	SynRangeDangling   Code = 2007
)

func (c Code) String() string {
	return fmt.Sprintf("P%04d", uint16(c))
}
