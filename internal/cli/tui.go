package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
)

// gridTop is the number of lines View prints above the grid.
const gridTop = 2

// burstSteps is how many search steps one message runs when there is no
// frame delay.
const burstSteps = 64

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playFoundStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	playFailStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// =============================================================================
// PlayModel - Interactive grid editor and search animation
// =============================================================================

// stepMsg asks the model to advance the running search. gen ties it to one
// run so ticks left over from a cancelled run are ignored.
type stepMsg struct{ gen int }

// PlayModel is the bubbletea model of the play command. Left click places
// Start, then End, then barriers; right click clears a cell; space runs A*
// one step per frame. m carves a maze and w scatters walls.
type PlayModel struct {
	Grid  *gridgraph.Grid
	Start *gridgraph.Position
	End   *gridgraph.Position

	// Result and Err hold the outcome of the last finished run.
	Result *astar.Result
	Err    error
	Runs   int

	ctx         context.Context
	delay       time.Duration
	frameBorder bool
	rng         *rand.Rand

	stepper *astar.Stepper
	cancel  context.CancelFunc
	gen     int
	last    astar.Snapshot

	cursor *gridgraph.Position
}

// NewPlayModel creates a model over an n×n grid. ctx bounds every search
// the model starts.
func NewPlayModel(ctx context.Context, n int, delay time.Duration, frameBorder bool) (PlayModel, error) {
	g, err := gridgraph.New(n)
	if err != nil {
		return PlayModel{}, err
	}
	if frameBorder {
		g.FrameBorder()
	}
	return PlayModel{
		Grid:        g,
		ctx:         ctx,
		delay:       delay,
		frameBorder: frameBorder,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Running reports whether a search is in flight.
func (m PlayModel) Running() bool { return m.stepper != nil }

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case stepMsg:
		return m.handleStep(msg)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m = m.stop()
		return m, tea.Quit
	case " ", "space":
		return m.startSearch()
	case "esc":
		m = m.stop()
	case "r":
		m = m.stop()
		m.Grid.ResetSearch()
		m.Result, m.Err = nil, nil
	case "c":
		m = m.stop()
		m.Grid.Clear()
		if m.frameBorder {
			m.Grid.FrameBorder()
		}
		m.Start, m.End = nil, nil
		m.Result, m.Err = nil, nil
	case "m":
		m = m.stop().carveMaze()
	case "w":
		m = m.stop()
		m.Grid.ResetSearch()
		if _, err := maze.Scatter(m.Grid, maze.WithRand(m.rng)); err != nil {
			m.Err = err
		}
	}
	return m, nil
}

// carveMaze replaces the grid with a maze and puts Start and End at its
// opposite corners.
func (m PlayModel) carveMaze() PlayModel {
	res, err := maze.Carve(m.Grid, maze.WithRand(m.rng))
	m.Result = nil
	if err != nil {
		m.Err = err
		return m
	}
	m.Err = nil
	start, end := res.Start, res.End
	m.Grid.At(start).SetState(gridgraph.Start)
	m.Grid.At(end).SetState(gridgraph.End)
	m.Start, m.End = &start, &end
	return m
}

// handleMouse edits the grid. Edits are ignored while a search runs.
func (m PlayModel) handleMouse(msg tea.MouseMsg) PlayModel {
	p, ok := render.CellAtPoint(msg.X, msg.Y-gridTop, render.DefaultCellColumns, m.Grid.Size())
	if !ok {
		m.cursor = nil
		return m
	}
	m.cursor = &p
	if m.Running() {
		return m
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m = m.place(p)
	case tea.MouseButtonRight:
		m = m.erase(p)
	}
	return m
}

// place sets Start if unset, else End if unset, else a barrier. Start and
// End are never overwritten.
func (m PlayModel) place(p gridgraph.Position) PlayModel {
	isStart := m.Start != nil && *m.Start == p
	isEnd := m.End != nil && *m.End == p
	switch {
	case m.Start == nil && !isEnd:
		m.Start = &p
		m.Grid.At(p).SetState(gridgraph.Start)
	case m.End == nil && !isStart:
		m.End = &p
		m.Grid.At(p).SetState(gridgraph.End)
	case !isStart && !isEnd:
		m.Grid.At(p).SetState(gridgraph.Barrier)
	}
	return m
}

// erase resets the cell and forgets it as an endpoint.
func (m PlayModel) erase(p gridgraph.Position) PlayModel {
	m.Grid.At(p).Reset()
	if m.Start != nil && *m.Start == p {
		m.Start = nil
	}
	if m.End != nil && *m.End == p {
		m.End = nil
	}
	return m
}

// startSearch clears old marks, recomputes adjacency and starts a stepper.
func (m PlayModel) startSearch() (tea.Model, tea.Cmd) {
	if m.Running() || m.Start == nil || m.End == nil {
		return m, nil
	}
	m.Grid.ResetSearch()
	m.Grid.RecomputeAdjacency()

	ctx, cancel := context.WithCancel(m.ctx)
	s, err := astar.NewStepper(m.Grid, *m.Start, *m.End, astar.WithContext(ctx))
	if err != nil {
		cancel()
		m.Err = err
		return m, nil
	}
	m.stepper, m.cancel = s, cancel
	m.gen++
	m.Runs++
	m.Result, m.Err = nil, nil
	m.last = astar.Snapshot{}
	return m, m.tick()
}

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	if m.delay <= 0 {
		return func() tea.Msg { return stepMsg{gen: gen} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (m PlayModel) handleStep(msg stepMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.Running() {
		return m, nil
	}
	n := 1
	if m.delay <= 0 {
		n = burstSteps
	}
	for i := 0; i < n && !m.stepper.Done(); i++ {
		m.last, _ = m.stepper.Step()
	}
	if !m.stepper.Done() {
		return m, m.tick()
	}
	m.Result, m.Err = m.stepper.Result(), m.stepper.Err()
	return m.stop(), nil
}

// stop cancels a running search and drops its stepper. Marks already made
// stay on the grid.
func (m PlayModel) stop() PlayModel {
	if m.cancel != nil {
		m.cancel()
	}
	if m.stepper != nil && !m.stepper.Done() {
		m.Err = astar.ErrCancelled
		m.Result = m.stepper.Result()
	}
	m.stepper, m.cancel = nil, nil
	return m
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s  %d×%d", appName, m.Grid.Size(), m.Grid.Size())))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("left: start/end/wall  right: erase  space: run  esc: stop  m: maze  w: walls  r: reset  c: clear  q: quit"))
	b.WriteString("\n")

	b.WriteString(render.Terminal(m.Grid, render.TermOptions{Cursor: m.cursor}))
	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

func (m PlayModel) status() string {
	switch {
	case m.Running():
		return playStatusStyle.Render(fmt.Sprintf("%s  step %d  frontier %d  expanded %d",
			m.last.Phase, m.last.Step, m.last.Frontier, m.last.Expanded))
	case m.Err != nil && errors.Is(m.Err, astar.ErrNoPath):
		return playFailStyle.Render(fmt.Sprintf("no path  expanded %d", len(m.Result.Expanded)))
	case m.Err != nil:
		return playFailStyle.Render(m.Err.Error())
	case m.Result != nil && m.Result.Found:
		return playFoundStyle.Render(fmt.Sprintf("path found  cost %d  expanded %d",
			m.Result.Cost, len(m.Result.Expanded)))
	case m.Start == nil:
		return playStatusStyle.Render("place the start cell")
	case m.End == nil:
		return playStatusStyle.Render("place the end cell")
	}
	return playStatusStyle.Render("draw walls, then press space")
}
