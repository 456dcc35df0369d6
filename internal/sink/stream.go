package sink

import (
	"bufio"
	"io"
)

// Stream пишет кандидатов в выходной поток через ограниченный буфер.
// Запись блокирующая: генерация никогда не убегает вперёд потребителя
// дальше, чем на размер буфера.
type Stream struct {
	w *bufio.Writer
}

// NewStream оборачивает выходной поток.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: bufio.NewWriterSize(w, 64*1024)}
}

// Push пишет строку. Ошибка записи (обычно закрытый pipe) — это просьба
// остановиться, а не сбой: возвращаем MatchUnknown без ошибки.
func (s *Stream) Push(line []byte) (Match, error) {
	if _, err := s.w.Write(line); err != nil {
		return MatchUnknown, nil
	}
	return MatchNone, nil
}

// Close досылает буфер. Ошибку закрытого pipe глотаем по той же причине,
// что и в Push.
func (s *Stream) Close() error {
	_ = s.w.Flush()
	return nil
}
