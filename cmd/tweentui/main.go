// Package main provides a terminal viewer for show files. The engine is
// stepped from the bubbletea update loop, so playback and input handling
// stay on a single goroutine.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/osa030/tweenbox/internal/app/engine"
	"github.com/osa030/tweenbox/internal/app/show"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
	"github.com/osa030/tweenbox/internal/infra/logger"
)

var (
	app       = kingpin.New("tweentui", "tweenbox terminal show viewer")
	showPath  = app.Arg("show", "Path to show file").Required().String()
	fps       = app.Flag("fps", "Frames per second").Default("30").Int()
	timeScale = app.Flag("time-scale", "Scaled clock rate").Default("1").Float64()
	logfile   = app.Flag("logfile", "Path to log file").String()
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true)
	nameStyle   = lipgloss.NewStyle().Bold(true).Width(12)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type tickMsg time.Time

// model holds the running show. Replay rebuilds stage, engine and show
// from the loaded definition so chained and manual steps start over
// exactly as they did on first build.
type model struct {
	def    *show.Def
	st     *stage.Stage
	eng    *engine.Engine
	s      *show.Show
	paused bool
	err    error
}

func newModel(def *show.Def) (*model, error) {
	st := stage.New()
	eng := engine.New(st)
	eng.Clock().SetTimeScale(*timeScale)

	s, err := show.Build(def, st, eng)
	if err != nil {
		return nil, err
	}

	return &model{def: def, st: st, eng: eng, s: s}, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(*fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.eng.Step(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			fresh, err := newModel(m.def)
			if err != nil {
				m.err = err
				return m, nil
			}
			fresh.paused = m.paused
			if m.paused {
				fresh.eng.Clock().SetTimeScale(0)
			}
			return fresh, tick()
		case "p":
			m.paused = !m.paused
			m.eng.Clock().SetTimeScale(lo.Ternary(m.paused, 0, *timeScale))
			return m, nil
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var b strings.Builder

	header := titleStyle.Render("tweenbox") + " " + m.s.Name()
	status := fmt.Sprintf("frame %d  t=%6.2fs  active %d/%d",
		m.eng.Frame(), m.eng.Clock().Time(), m.eng.Active(), m.eng.Len())
	if m.paused {
		status += "  [paused]"
	}
	b.WriteString(header + "  " + statusStyle.Render(status) + "\n\n")

	for _, n := range m.eng.Snapshot() {
		line := fmt.Sprintf("%s %s %s  pos(%6.1f,%6.1f,%6.1f)  rot %6.1f  scale %4.2f",
			nameStyle.Render(n.Name),
			barStyle.Render(alphaBar(n.Alpha, 10)),
			colorSwatch(n.Color),
			n.Position.X, n.Position.Y, n.Position.Z,
			n.Rotation, n.Scale.X)
		b.WriteString("  " + line + "\n")
	}

	b.WriteString(helpStyle.Render("  [space] replay  [p] pause  [q] quit") + "\n")
	return b.String()
}

// alphaBar renders opacity as a fixed-width block bar.
func alphaBar(alpha float64, width int) string {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	filled := int(alpha*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// colorSwatch renders the node color as a colored block.
func colorSwatch(c value.Color) string {
	hex := fmt.Sprintf("#%02x%02x%02x", int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// The TUI owns stdout, so logs go to a file or nowhere useful.
	loggerConfig := logger.Config{Output: "stderr", Level: "error"}
	if *logfile != "" {
		loggerConfig = logger.Config{Output: *logfile, Level: "info", File: *logfile}
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	def, err := show.Load(*showPath)
	if err != nil {
		fmt.Printf("Error: failed to load show: %v\n", err)
		os.Exit(1)
	}

	m, err := newModel(def)
	if err != nil {
		fmt.Printf("Error: failed to build show: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
