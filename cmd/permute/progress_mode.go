package main

import (
	"fmt"
	"os"
	"strings"
)

type progressMode string

const (
	progressAuto progressMode = "auto"
	progressOn   progressMode = "on"
	progressOff  progressMode = "off"
)

func readProgressMode(value string) (progressMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressOn, nil
	case "off":
		return progressOff, nil
	default:
		return "", fmt.Errorf("invalid --progress value %q (expected auto|on|off)", value)
	}
}

// shouldShowProgress решает, рисовать ли бар. В режиме auto бар уместен,
// только когда stderr — терминал, а stdout либо не используется (exec),
// либо перенаправлен: на терминале кандидаты всё равно проматывают экран.
func shouldShowProgress(mode progressMode, quiet, execMode bool) bool {
	if quiet {
		return false
	}
	switch mode {
	case progressOn:
		return true
	case progressOff:
		return false
	default:
		if !isTerminal(os.Stderr) {
			return false
		}
		if execMode {
			return true
		}
		return !isTerminal(os.Stdout)
	}
}
