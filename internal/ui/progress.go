package ui

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"permute/internal/space"
)

// Event — снимок хода перечисления. Done считается от начала прогона,
// стартовое смещение (--skip) модель добавляет сама.
type Event struct {
	Done uint64
}

type eventMsg Event
type doneMsg struct{}

// rateSample — точка для скользящей средней скорости.
type rateSample struct {
	at   time.Time
	done uint64
}

const rateWindow = 32

type progressModel struct {
	events <-chan Event
	total  *big.Int
	base   *big.Int // линейный индекс, с которого начали

	spinner  spinner.Model
	prog     progress.Model
	printer  *message.Printer
	start    time.Time
	done     uint64
	samples  []rateSample
	width    int
	finished bool
}

// NewProgressModel returns a Bubble Tea model that renders enumeration
// progress: fraction complete, throughput and ETA.
func NewProgressModel(total, base *big.Int, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &progressModel{
		events:  events,
		total:   total,
		base:    base,
		spinner: sp,
		prog:    prog,
		printer: message.NewPrinter(language.English),
		start:   time.Now(),
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			w := msg.Width / 2
			if w < 10 {
				w = 10
			}
			m.prog.Width = w
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	produced := m.produced()
	frac := space.Fraction(produced, m.total)

	var b strings.Builder
	if m.finished {
		b.WriteString("  ")
		b.WriteString(m.prog.ViewAs(frac))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.prog.ViewAs(frac))
	}

	elapsed := time.Since(m.start).Round(time.Second)
	counts := fmt.Sprintf(" [%s] %s/%s", formatElapsed(elapsed), m.formatCount(produced), m.formatCount(m.total))
	b.WriteString(counts)

	if !m.finished {
		if eta, ok := space.ETA(produced, m.total, m.rate()); ok {
			b.WriteString(fmt.Sprintf(" (eta %s)", formatElapsed(eta.Round(time.Second))))
		} else {
			b.WriteString(" (eta ∞)")
		}
	}

	line := b.String()
	if runewidth.StringWidth(line) > m.width && m.width > 3 {
		line = runewidth.Truncate(line, m.width-3, "...")
	}
	return line + "\n"
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	m.done = ev.Done
	m.samples = append(m.samples, rateSample{at: time.Now(), done: ev.Done})
	if len(m.samples) > rateWindow {
		m.samples = m.samples[len(m.samples)-rateWindow:]
	}
	return nil
}

// produced возвращает абсолютный индекс: стартовое смещение плюс счётчик
// прогона.
func (m *progressModel) produced() *big.Int {
	abs := new(big.Int).SetUint64(m.done)
	return abs.Add(abs, m.base)
}

// rate — скользящая средняя скорость по последним событиям, кандидатов/с.
func (m *progressModel) rate() float64 {
	if len(m.samples) < 2 {
		return 0
	}
	first, last := m.samples[0], m.samples[len(m.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.done-first.done) / dt
}

// formatCount печатает число с группировкой разрядов, а слишком большие
// для int64 — в научной нотации: точность бара всё равно ограничена.
func (m *progressModel) formatCount(v *big.Int) string {
	if v.IsInt64() {
		return m.printer.Sprintf("%d", v.Int64())
	}
	return new(big.Float).SetInt(v).Text('e', 3)
}

func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	mnt := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mnt, s)
	}
	return fmt.Sprintf("%02d:%02d", mnt, s)
}
