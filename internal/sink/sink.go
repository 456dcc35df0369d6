package sink

// Match — ответ приёмника на очередного кандидата.
type Match uint8

const (
	// MatchNone: кандидат не подошёл, продолжаем перечисление.
	MatchNone Match = iota
	// MatchKnown: кандидат точно подошёл (exec вернул 0) — можно
	// останавливаться и сообщать строку.
	MatchKnown
	// MatchUnknown: потребитель отсоединился (закрытый pipe); это просьба
	// остановиться, но какая именно строка сработала — неизвестно.
	MatchUnknown
)

// Sink принимает кандидатов по одному. line содержит строку вместе с
// завершающим разделителем записей; срез валиден только на время вызова.
// Ошибка означает фатальный сбой всего прогона, а не пропуск кандидата.
type Sink interface {
	Push(line []byte) (Match, error)
	Close() error
}
