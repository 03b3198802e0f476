package viewer

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bnema/canalyzer/internal/application"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	PollInterval time.Duration
	IDWidth      int
	ColumnWidth  int
	// SourceLabel names the line source on the waiting screen.
	SourceLabel string
	// Output replaces the terminal output; nil keeps stdout.
	Output io.Writer
	// InputTTY reads keys from the controlling terminal, used when stdin
	// carries the records.
	InputTTY  bool
	AltScreen bool
}

type tickMsg time.Time

type model struct {
	monitor  *application.Monitor
	opts     Options
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	styles   styles
	layout   layout
	quitting bool
}

func newModel(monitor *application.Monitor, opts Options) model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = application.DefaultPollInterval
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		monitor: monitor,
		opts:    opts,
		keys:    DefaultKeyMap,
		help:    help.New(),
		spinner: s,
		styles:  newStyles(),
		layout: layout{
			idWidth:     opts.IDWidth,
			columnWidth: opts.ColumnWidth,
		}.normalized(),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	m.monitor.Step()
	return tea.Batch(m.tick(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.monitor.Step()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.layout.width = msg.Width
		m.layout.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		event, ok := m.keys.forMode(m.monitor.Mode()).eventFor(msg)
		if !ok {
			return m, nil
		}
		if m.monitor.Handle(event) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.monitor.Store().Len() > 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	mode := m.monitor.Mode()
	footer := m.styles.title.Render(footerTitle(mode)) + "  " + m.help.ShortHelpView(m.keys.forMode(mode).ShortHelp())

	if m.monitor.Store().Len() == 0 {
		label := m.opts.SourceLabel
		if label == "" {
			label = "input"
		}
		waiting := m.spinner.View() + " " + m.styles.waiting.Render("waiting for records on "+label)
		return waiting + "\n" + renderStatus(m.monitor.Status(), m.styles) + "\n" + footer
	}

	rows := m.monitor.Rows(m.layout.columns())
	return renderView(rows, m.monitor.Status(), footer, m.layout, m.styles)
}

// Run drives the interactive viewer until the user quits or ctx is done.
func Run(ctx context.Context, monitor *application.Monitor, opts Options) error {
	if monitor == nil {
		return errors.New("viewer requires a monitor")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.InputTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	_, err := tea.NewProgram(newModel(monitor, opts), programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
