package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	shellwords "github.com/mattn/go-shellwords"
)

// Exec скармливает каждого кандидата на stdin подпроцесса и смотрит на
// код выхода: 0 означает «кандидат подошёл». Команда запускается напрямую,
// без шелла, поэтому метасимволы в кандидатах инертны.
type Exec struct {
	ctx  context.Context
	bin  string
	args []string
}

// NewExec разбирает командную строку с кавычками в стиле шелла.
func NewExec(ctx context.Context, cmdline string) (*Exec, error) {
	words, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("failed to parse exec command: %w", err)
	}
	if len(words) == 0 {
		return nil, errors.New("exec command can't be empty")
	}
	return &Exec{
		ctx:  ctx,
		bin:  words[0],
		args: words[1:],
	}, nil
}

// Push запускает подпроцесс для одного кандидата и ждёт его завершения.
// Ненулевой код выхода — обычное «не подошло»; невозможность запустить
// команду фатальна для всего прогона, команда ведь одна и та же.
func (e *Exec) Push(line []byte) (Match, error) {
	cmd := exec.CommandContext(e.ctx, e.bin, e.args...)
	cmd.Stdin = bytes.NewReader(line)

	err := cmd.Run()
	if err == nil {
		return MatchKnown, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return MatchNone, nil
	}
	return MatchNone, fmt.Errorf("failed to spawn %q: %w", e.bin, err)
}

func (e *Exec) Close() error {
	return nil
}
