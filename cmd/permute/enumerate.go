package main

import (
	"context"

	"permute/internal/sink"
	"permute/internal/space"
)

// outcome — итог цикла перечисления.
type outcome struct {
	produced uint64
	found    []byte // сработавший кандидат (exec-режим)
	stopped  bool   // ранняя остановка: закрытый pipe, лимит или отмена
}

// enumerate — движущий цикл: тянет строки из итератора и отдаёт их
// приёмнику, пока пространство не кончится или приёмник не попросит
// остановиться. Отмена кооперативная, проверяется между кандидатами.
func enumerate(ctx context.Context, it *space.Iter, snk sink.Sink, limit uint64, onStep func(done uint64)) (outcome, error) {
	var out outcome
	line := make([]byte, 0, 64)

	for {
		select {
		case <-ctx.Done():
			out.stopped = true
			return out, nil
		default:
		}

		candidate, ok := it.Next()
		if !ok {
			return out, nil
		}

		line = append(line[:0], candidate...)
		line = append(line, '\n')

		match, err := snk.Push(line)
		if err != nil {
			return out, err
		}
		out.produced++
		if onStep != nil {
			onStep(out.produced)
		}

		switch match {
		case sink.MatchKnown:
			out.found = append([]byte(nil), candidate...)
			out.stopped = true
			return out, nil
		case sink.MatchUnknown:
			out.stopped = true
			return out, nil
		}

		if limit > 0 && out.produced >= limit {
			out.stopped = true
			return out, nil
		}
	}
}
