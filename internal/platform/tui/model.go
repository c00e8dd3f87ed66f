// Package tui is the Bubble Tea shell around the simulation core. All
// game rules live in internal/game; the shell only routes input,
// renders state, and autosaves after every transform.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avoigt/kapellmeister/internal/game"
)

// GameStore is what the shell needs from persistence. A nil store means
// an ephemeral session.
type GameStore interface {
	SaveGame(state game.GameState) error
	LoadGame() (*game.GameState, error)
	RecordPremiere(work game.CompletedWork) (int64, error)
}

type screen int

const (
	screenStart screen = iota
	screenGame
	screenEvent
	screenRevival
	screenResult
	screenGameOver
)

type tab int

const (
	tabCompose tab = iota
	tabPremiere
	tabCareer
	tabUpgrades
	tabHistory
	tabCount
)

var tabNames = [tabCount]string{"Compose", "Premiere", "Career", "Upgrades", "History"}

// allocPresets are the selectable weekly effort splits.
var allocPresets = []struct {
	name  string
	alloc game.PhaseAllocation
}{
	{"Balanced", game.PhaseAllocation{Sketching: 25, Orchestration: 25, RehearsalPrep: 25, Revision: 25}},
	{"Sketching focus", game.PhaseAllocation{Sketching: 55, Orchestration: 15, RehearsalPrep: 15, Revision: 15}},
	{"Orchestration focus", game.PhaseAllocation{Sketching: 15, Orchestration: 55, RehearsalPrep: 15, Revision: 15}},
	{"Rehearsal focus", game.PhaseAllocation{Sketching: 15, Orchestration: 15, RehearsalPrep: 55, Revision: 15}},
	{"Revision focus", game.PhaseAllocation{Sketching: 15, Orchestration: 15, RehearsalPrep: 15, Revision: 55}},
}

// Model is the Bubble Tea model for a career session.
type Model struct {
	engine *game.Engine
	store  GameStore
	keys   *KeyMapper

	state  game.GameState
	screen screen
	tab    tab

	nameInput textinput.Model

	cursor      int
	composeStep int // 0 form, 1 style, 2 instrumentation
	chosenForm  game.Form
	chosenStyle game.Style
	allocPreset int

	venueCursor   int
	musicianIdx   int
	dedicationIdx int // 0 = no dedication, then 1..len(patrons)
	advertising   int

	lastPremiere *game.CompletedWork
	eventCursor  int

	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates the shell model, resuming a saved career if one
// exists in the store.
func NewModel(engine *game.Engine, store GameStore) Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 30
	ti.Width = 30
	ti.Focus()

	m := Model{
		engine:      engine,
		store:       store,
		keys:        NewKeyMapper(),
		nameInput:   ti,
		musicianIdx: 1, // competent by default
	}

	if store != nil {
		if saved, err := store.LoadGame(); err == nil && saved != nil && saved.Started {
			m.state = *saved
			m.screen = screenGame
			if saved.IsGameOver {
				m.screen = screenGameOver
			} else if saved.CurrentEvent != nil {
				m.screen = screenEvent
			} else if saved.PendingRevival != nil {
				m.screen = screenRevival
			}
		}
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.screen == screenStart {
		return textinput.Blink
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenStart:
			return m.updateStart(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenEvent:
			return m.updateEvent(msg)
		case screenRevival:
			return m.updateRevival(msg)
		case screenResult:
			m.screen = screenGame
			m.lastPremiere = nil
			return m, nil
		case screenGameOver:
			if s := msg.String(); s == "q" || s == "ctrl+c" || s == "enter" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.state = game.NewGame(name)
		m.screen = screenGame
		m.autosave()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.autosave()
		m.quitting = true
		return m, tea.Quit

	case ActionNextTab:
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
		m.status = ""
		return m, nil

	case ActionPrevTab:
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.cursor = 0
		m.status = ""
		return m, nil

	case ActionPassWeek:
		return m.advanceWeek()
	}

	switch m.tab {
	case tabCompose:
		return m.updateCompose(action)
	case tabPremiere:
		return m.updatePremiere(action)
	case tabUpgrades:
		return m.updateUpgrades(action)
	case tabHistory, tabCareer:
		// read-only tabs
	}
	return m, nil
}

func (m Model) updateCompose(action Action) (tea.Model, tea.Cmd) {
	if m.state.WorkInProgress == nil {
		return m.updateComposeWizard(action)
	}

	switch action {
	case ActionUp:
		if m.allocPreset > 0 {
			m.allocPreset--
		}
	case ActionDown:
		if m.allocPreset < len(allocPresets)-1 {
			m.allocPreset++
		}
	case ActionSelect:
		next, err := m.engine.ApplyWorkWeek(m.state, allocPresets[m.allocPreset].alloc)
		if err != nil {
			m.status = errText(err)
			return m, nil
		}
		m.state = next
		return m.advanceWeek()
	case ActionFinishWork:
		next, err := m.engine.FinishComposition(m.state)
		if err != nil {
			m.status = errText(err)
			return m, nil
		}
		m.state = next
		m.status = "The score is finished. Stage its premiere."
		m.tab = tabPremiere
		m.autosave()
	}
	return m, nil
}

func (m Model) updateComposeWizard(action Action) (tea.Model, tea.Cmd) {
	length := 0
	switch m.composeStep {
	case 0:
		length = len(game.AllForms)
	case 1:
		length = len(game.AllStyles)
	case 2:
		length = len(game.AllInstrumentations)
	}

	switch action {
	case ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case ActionDown:
		if m.cursor < length-1 {
			m.cursor++
		}
	case ActionBack:
		if m.composeStep > 0 {
			m.composeStep--
			m.cursor = 0
		}
	case ActionSelect:
		switch m.composeStep {
		case 0:
			form := game.AllForms[m.cursor]
			if m.state.Stats.Reputation < game.Forms[form].RequiredReputation {
				m.status = "Your reputation is not yet equal to such a work."
				return m, nil
			}
			m.chosenForm = form
			m.composeStep, m.cursor = 1, 0
		case 1:
			m.chosenStyle = game.AllStyles[m.cursor]
			m.composeStep, m.cursor = 2, 0
		case 2:
			inst := game.AllInstrumentations[m.cursor]
			next, err := m.engine.StartComposition(m.state, m.chosenForm, m.chosenStyle, inst)
			if err != nil {
				m.status = errText(err)
				return m, nil
			}
			m.state = next
			m.composeStep, m.cursor = 0, 0
			m.status = "Work begun: " + m.state.WorkInProgress.Title
			m.autosave()
		}
	}
	return m, nil
}

func (m Model) updatePremiere(action Action) (tea.Model, tea.Cmd) {
	if m.state.PendingPremiere == nil {
		return m, nil
	}

	switch action {
	case ActionUp:
		if m.venueCursor > 0 {
			m.venueCursor--
		}
	case ActionDown:
		if m.venueCursor < len(game.AllVenues)-1 {
			m.venueCursor++
		}
	case ActionCycleMusicians:
		m.musicianIdx = (m.musicianIdx + 1) % len(game.AllMusicianTiers)
	case ActionCycleDedication:
		m.dedicationIdx = (m.dedicationIdx + 1) % (len(m.state.Patrons) + 1)
	case ActionMore:
		m.advertising += 10
	case ActionLess:
		if m.advertising >= 10 {
			m.advertising -= 10
		}
	case ActionSelect:
		setup := game.PremiereSetup{
			Venue:            game.AllVenues[m.venueCursor],
			Musicians:        game.AllMusicianTiers[m.musicianIdx],
			AdvertisingSpent: m.advertising,
		}
		if m.dedicationIdx > 0 {
			setup.DedicatedTo = m.state.Patrons[m.dedicationIdx-1].ID
		}

		next, work, err := m.engine.SchedulePremiere(m.state, setup)
		if err != nil {
			m.status = errText(err)
			return m, nil
		}
		m.state = next
		m.lastPremiere = &work
		m.recordPremiere(work)
		m.state, _ = m.engine.CheckMilestones(m.state)
		m.autosave()
		m.screen = screenResult
		m.advertising = 0
		m.dedicationIdx = 0
	}
	return m, nil
}

func (m Model) updateUpgrades(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case ActionDown:
		if m.cursor < len(m.state.Upgrades)-1 {
			m.cursor++
		}
	case ActionSelect:
		u := m.state.Upgrades[m.cursor]
		next, err := m.engine.PurchaseUpgrade(m.state, u.ID)
		if err != nil {
			m.status = errText(err)
			return m, nil
		}
		m.state = next
		m.status = "Purchased " + u.Name + "."
		m.autosave()
	}
	return m, nil
}

func (m Model) updateEvent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.state.CurrentEvent
	if ev == nil {
		m.screen = screenGame
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	case ActionUp:
		if m.eventCursor > 0 {
			m.eventCursor--
		}
	case ActionDown:
		if m.eventCursor < len(ev.Choices)-1 {
			m.eventCursor++
		}
	case ActionSelect:
		m.state = m.engine.ApplyEventChoice(m.state, ev.Choices[m.eventCursor])
		m.state, _ = m.engine.CheckMilestones(m.state)
		m.eventCursor = 0
		m.screen = screenGame
		if m.state.PendingRevival != nil {
			m.screen = screenRevival
		}
		m.autosave()
	}
	return m, nil
}

func (m Model) updateRevival(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	case "y", "enter":
		next, work, err := m.engine.AcceptRevival(m.state)
		if err != nil {
			m.status = errText(err)
			m.state = m.engine.DeclineRevival(m.state)
			m.screen = screenGame
			m.autosave()
			return m, nil
		}
		m.state = next
		m.lastPremiere = &work
		m.recordPremiere(work)
		m.autosave()
		m.screen = screenResult
	case "n", "esc":
		m.state = m.engine.DeclineRevival(m.state)
		m.screen = screenGame
		m.autosave()
	}
	return m, nil
}

// advanceWeek runs the weekly tick and routes to whatever the new week
// brings: a narrative event, a revival offer, or the end of the road.
func (m Model) advanceWeek() (tea.Model, tea.Cmd) {
	m.state = m.engine.AdvanceWeek(m.state)

	if !m.state.IsGameOver && m.state.CurrentEvent == nil {
		if ev := m.engine.RandomEvent(m.state.Stats.Reputation); ev != nil {
			m.state.CurrentEvent = ev
			m.state = m.engine.AddLogEntry(m.state, "Event: "+ev.Title, game.LogEvent)
		}
	}

	var unlocked []string
	m.state, unlocked = m.engine.CheckMilestones(m.state)
	if len(unlocked) > 0 {
		m.status = "Milestone: " + strings.Join(unlocked, ", ")
	}

	switch {
	case m.state.IsGameOver:
		m.screen = screenGameOver
	case m.state.CurrentEvent != nil:
		m.screen = screenEvent
		m.eventCursor = 0
	case m.state.PendingRevival != nil:
		m.screen = screenRevival
	}

	m.autosave()
	return m, nil
}

func (m Model) autosave() {
	if m.store == nil || !m.state.Started {
		return
	}
	if err := m.store.SaveGame(m.state); err != nil {
		log.Warn("autosave failed", "err", err)
	}
}

func (m Model) recordPremiere(work game.CompletedWork) {
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordPremiere(work); err != nil {
		log.Warn("cannot record premiere", "err", err)
	}
}

// errText turns engine sentinels into player-facing messages.
func errText(err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		return "You cannot afford that."
	case errors.Is(err, game.ErrReputationTooLow):
		return "Your reputation does not yet open that door."
	case errors.Is(err, game.ErrAlreadyComposing):
		return "You are already at work on a composition."
	case errors.Is(err, game.ErrNoWorkInProgress):
		return "There is no composition in progress."
	case errors.Is(err, game.ErrWorkNotReady):
		return "The work needs more weeks before it can be finished."
	case errors.Is(err, game.ErrPremierePending):
		return "Premiere your finished work before completing another."
	case errors.Is(err, game.ErrNoPendingPremiere):
		return "No finished work awaits a premiere."
	case errors.Is(err, game.ErrLowInspiration):
		return "You lack the inspiration for that."
	case errors.Is(err, game.ErrAlreadyPurchased):
		return "You already own that."
	case errors.Is(err, game.ErrGameOver):
		return "The career has ended."
	}
	return err.Error()
}

// Run starts the interactive session.
func Run(engine *game.Engine, store GameStore) error {
	p := tea.NewProgram(NewModel(engine, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
