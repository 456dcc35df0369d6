package main

import (
	"context"
	"math/big"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"permute/internal/sink"
	"permute/internal/space"
	"permute/internal/ui"
)

// runWithUI гоняет цикл перечисления в отдельной горутине и кормит
// прогресс-бар снимками счётчика через канал. Бар рисуется в stderr,
// чтобы не пачкать stdout, который может быть перенаправлен.
func runWithUI(ctx context.Context, it *space.Iter, snk sink.Sink, total, base *big.Int, limit uint64) (outcome, error) {
	events := make(chan ui.Event, 64)

	var out outcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		var lastSent time.Time
		o, err := enumerate(gctx, it, snk, limit, func(done uint64) {
			// дросселируем: проверка времени раз в 1024 шага,
			// отправка не чаще ~10 раз в секунду
			if done&1023 != 0 {
				return
			}
			if time.Since(lastSent) < 100*time.Millisecond {
				return
			}
			lastSent = time.Now()
			select {
			case events <- ui.Event{Done: done}:
			default:
			}
		})
		out = o
		return err
	})

	model := ui.NewProgressModel(total, base, events)
	// ввод отключён: Ctrl+C обрабатывает signal.NotifyContext снаружи
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil), tea.WithoutSignalHandler())
	_, uiErr := program.Run()

	err := g.Wait()
	if err != nil {
		return out, err
	}
	return out, uiErr
}
