package game

import (
	"strings"
	"testing"
)

func TestEventCatalogueWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, ev := range GameEvents {
		if ev.ID == "" || ev.Title == "" || ev.Description == "" {
			t.Errorf("event %q missing required fields", ev.ID)
		}
		if seen[ev.ID] {
			t.Errorf("duplicate event id %q", ev.ID)
		}
		seen[ev.ID] = true
		if len(ev.Choices) < 2 {
			t.Errorf("event %q has %d choices, want at least 2", ev.ID, len(ev.Choices))
		}
		for _, c := range ev.Choices {
			if len(c.Effects) == 0 {
				t.Errorf("event %q choice %q has no effects", ev.ID, c.Text)
			}
			for _, eff := range c.Effects {
				if eff.Kind == EventEffectSkill && eff.Target == "" {
					t.Errorf("event %q skill effect missing target", ev.ID)
				}
			}
		}
	}
	if len(GameEvents) != 12 {
		t.Errorf("expected 12 events, got %d", len(GameEvents))
	}
}

func TestRandomEventGate(t *testing.T) {
	// 0.5 fails the 20% weekly gate.
	e := scriptedEngine(&scriptRand{floats: []float64{0.5}})
	if ev := e.RandomEvent(0); ev != nil {
		t.Errorf("expected a quiet week, got %q", ev.ID)
	}

	// 0.1 passes the gate; index 0 is the first eligible event.
	e = scriptedEngine(&scriptRand{floats: []float64{0.1}, ints: []int{0}})
	ev := e.RandomEvent(0)
	if ev == nil {
		t.Fatal("expected an event")
	}
	if ev.ID != "patron_request" {
		t.Errorf("event = %q, want patron_request", ev.ID)
	}
}

func TestRandomEventReputationFilter(t *testing.T) {
	// At reputation 0 the imperial summons must never come up.
	e := seededEngine(13)
	for i := 0; i < 500; i++ {
		if ev := e.RandomEvent(0); ev != nil && ev.ID == "royal_invitation" {
			t.Fatal("royal_invitation drawn below its reputation requirement")
		}
	}

	// At reputation 30 it sits at index 10 of the eligible list.
	es := scriptedEngine(&scriptRand{floats: []float64{0.1}, ints: []int{10}})
	ev := es.RandomEvent(30)
	if ev == nil || ev.ID != "royal_invitation" {
		t.Errorf("event = %v, want royal_invitation", ev)
	}
}

func TestApplyEventChoiceClamps(t *testing.T) {
	e := seededEngine(1)
	s := NewGame("Ludwig")
	s.Stats.Money = 30
	s.Stats.Health = 90
	s.CurrentEvent = &GameEvent{ID: "test", Title: "A Test of Fate"}

	choice := EventChoice{
		Text: "Endure",
		Effects: []EventEffect{
			{Kind: EventEffectMoney, Value: -100},
			{Kind: EventEffectHealth, Value: 50},
			{Kind: EventEffectInspiration, Value: -200},
			{Kind: EventEffectSkill, Value: 3, Target: SkillMelody},
			{Kind: EventEffectConnection, Value: -20},
		},
	}

	out := e.ApplyEventChoice(s, choice)

	if out.Stats.Money != 0 {
		t.Errorf("Money = %d, want 0 (floored)", out.Stats.Money)
	}
	if out.Stats.Health != 100 {
		t.Errorf("Health = %d, want 100 (capped at max)", out.Stats.Health)
	}
	if out.Stats.Inspiration != 0 {
		t.Errorf("Inspiration = %d, want 0 (floored)", out.Stats.Inspiration)
	}
	if out.Skills.Melody != 13 {
		t.Errorf("Melody = %d, want 13", out.Skills.Melody)
	}
	if out.Stats.Connections != 0 {
		t.Errorf("Connections = %d, want 0 (floored)", out.Stats.Connections)
	}
	if out.CurrentEvent != nil {
		t.Error("CurrentEvent must be cleared")
	}
	if !strings.Contains(out.EventLog[0].Text, `Chose "Endure"`) {
		t.Errorf("log entry = %q", out.EventLog[0].Text)
	}
	// Input untouched.
	if s.CurrentEvent == nil {
		t.Error("ApplyEventChoice mutated its input")
	}
}

func TestApplyEventChoiceMaxHealthRespectsUpgrades(t *testing.T) {
	e := seededEngine(1)
	s := NewGame("Ludwig")
	s.Stats.MaxHealth = 120
	s.Stats.Health = 100
	s.CurrentEvent = &GameEvent{ID: "test", Title: "Rest Cure"}

	out := e.ApplyEventChoice(s, EventChoice{
		Text:    "Rest",
		Effects: []EventEffect{{Kind: EventEffectHealth, Value: 30}},
	})
	if out.Stats.Health != 120 {
		t.Errorf("Health = %d, want 120 (raised max)", out.Stats.Health)
	}
}
