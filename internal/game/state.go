package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// NewGame returns the fixed starting state: Vienna, January 1820.
func NewGame(composerName string) GameState {
	return GameState{
		Started:      true,
		ComposerName: composerName,
		CurrentDate:  GameDate{Year: 1820, Month: 0, Week: 1},
		Stats: ComposerStats{
			Money:       100,
			Reputation:  0,
			Inspiration: 50,
			Health:      100,
			MaxHealth:   100,
			Connections: 5,
		},
		Skills: Skills{
			Melody:        10,
			Harmony:       10,
			Orchestration: 5,
			Form:          8,
			Productivity:  10,
			Social:        5,
		},
		Tastes: TasteState{
			Current:   []TasteTrend{TrendLyricism, TrendCosmopolitan},
			Intensity: 30,
		},
		CompletedWorks: []CompletedWork{},
		Patrons:        initialPatrons(),
		Upgrades:       initialUpgrades(),
		EventLog: []LogEntry{{
			ID:   "start",
			Date: GameDate{Year: 1820, Month: 0, Week: 1},
			Text: fmt.Sprintf("%s begins their journey as a composer in Vienna.", composerName),
			Type: LogSystem,
		}},
		AchievedMilestones: []string{},
	}
}

// maxLogEntries bounds the newest-first event log.
const maxLogEntries = 100

// AddLogEntry prepends a log line, truncating the log to its bound.
func (e *Engine) AddLogEntry(s GameState, text string, logType LogType) GameState {
	out := s.Clone()
	out.appendLog(text, logType)
	return out
}

func (s *GameState) appendLog(text string, logType LogType) {
	entry := LogEntry{
		ID:   "log_" + uuid.NewString(),
		Date: s.CurrentDate,
		Text: text,
		Type: logType,
	}
	log := append([]LogEntry{entry}, s.EventLog...)
	if len(log) > maxLogEntries {
		log = log[:maxLogEntries]
	}
	s.EventLog = log
}

// AdvanceWeek is the single authoritative tick: calendar rollover,
// quarterly taste drift, passive recovery, publisher royalties and
// popularity decay, revival generation, and the old-age mortality roll.
// Once the game is over the tick is a no-op.
func (e *Engine) AdvanceWeek(s GameState) GameState {
	if s.IsGameOver {
		return s.Clone()
	}
	out := s.Clone()

	out.CurrentDate.Week++
	if out.CurrentDate.Week > 4 {
		out.CurrentDate.Week = 1
		out.CurrentDate.Month++
		if out.CurrentDate.Month > 11 {
			out.CurrentDate.Month = 0
			out.CurrentDate.Year++
		}
	}

	// Tastes can only shift on the first week of a quarter.
	if out.CurrentDate.Month%3 == 0 && out.CurrentDate.Week == 1 {
		out.Tastes = e.shiftTastes(out.Tastes)
	}

	recovery := e.bal.Life.HealthRecovery
	if room := out.Stats.MaxHealth - out.Stats.Health; room < recovery {
		recovery = room
	}
	out.Stats.Health += recovery

	drift := -1
	if e.chance(0.5) {
		drift = int(math.Round(2 * purchasedMultiplier(&out, "inspiration")))
	}
	out.Stats.Inspiration = clamp(out.Stats.Inspiration+drift, 0, 100)

	e.runPublisherWeek(&out)

	if out.CurrentDate.Year >= e.bal.Life.OldAgeYear && e.chance(e.bal.Life.OldAgeDeathChance) {
		out.IsGameOver = true
		out.GameOverReason = "died of old age"
		out.appendLog(fmt.Sprintf("%s has died of old age. The journey ends.", out.ComposerName), LogSystem)
	}

	return out
}

// shiftTastes rolls the quarterly drift: with the configured chance, one
// active trend is replaced by a trend that is neither active nor the
// opposite of the remaining trend, so an opposite pair can never be
// active together. Intensity rises when a shift lands.
func (e *Engine) shiftTastes(t TasteState) TasteState {
	if !e.chance(e.bal.Life.TrendShiftChance) {
		return t
	}

	idx := e.rng.Intn(len(t.Current))
	sibling := t.Current[(idx+1)%len(t.Current)]

	var available []TasteTrend
	for _, candidate := range allTrends {
		if candidate == trendOpposites[sibling] {
			continue
		}
		active := false
		for _, cur := range t.Current {
			if cur == candidate {
				active = true
				break
			}
		}
		if !active {
			available = append(available, candidate)
		}
	}
	if len(available) == 0 {
		return t
	}

	current := append([]TasteTrend(nil), t.Current...)
	current[idx] = available[e.rng.Intn(len(available))]
	return TasteState{
		Current:   current,
		Intensity: clamp(t.Intensity+e.bal.Life.IntensityStep, 0, e.bal.Life.IntensityCap),
	}
}

// purchasedMultiplier folds all latent multiplier effects for a target
// across purchased upgrades. Returns 1.0 when none apply.
func purchasedMultiplier(s *GameState, target string) float64 {
	m := 1.0
	for _, u := range s.Upgrades {
		if !u.Purchased {
			continue
		}
		for _, eff := range u.Effects {
			switch eff.Kind {
			case EffectMultiplier:
				if eff.Target == target {
					m *= eff.Value
				}
			case EffectStatBoost, EffectSkillBoost:
				// one-shot effects, consumed at purchase time
			}
		}
	}
	return m
}

func initialPatrons() []Patron {
	return []Patron{
		{
			ID:             "archduke_rudolf",
			Name:           "Archduke Rudolf",
			Title:          "Imperial Archduke",
			PreferredForms: []Form{FormSymphony, FormConcerto, FormMass},
			PreferredStyle: StyleClassical,
			Generosity:     100,
		},
		{
			ID:             "countess_erdody",
			Name:           "Countess Erdődy",
			Title:          "Hungarian Countess",
			PreferredForms: []Form{FormStringQuartet, FormPianoSonata},
			PreferredStyle: StyleEarlyRomantic,
			Generosity:     60,
		},
		{
			ID:             "baron_von_swieten",
			Name:           "Baron van Swieten",
			Title:          "Imperial Librarian",
			PreferredForms: []Form{FormMass, FormSymphony},
			PreferredStyle: StyleClassical,
			Generosity:     80,
		},
	}
}

func initialUpgrades() []Upgrade {
	return []Upgrade{
		{
			ID:          "better_apartment",
			Name:        "Better Apartment",
			Description: "Move to a quieter neighborhood with more space for your piano.",
			Category:    CategoryLiving,
			Cost:        150,
			Effects: []UpgradeEffect{
				{Kind: EffectStatBoost, Target: "maxHealth", Value: 20},
				{Kind: EffectStatBoost, Target: "inspiration", Value: 10},
			},
		},
		{
			ID:                 "quality_piano",
			Name:               "Broadwood Piano",
			Description:        "A fine English pianoforte with superior tone.",
			Category:           CategoryInstrument,
			Cost:               300,
			RequiredReputation: 10,
			Effects: []UpgradeEffect{
				{Kind: EffectSkillBoost, Target: "melody", Value: 5},
				{Kind: EffectSkillBoost, Target: "harmony", Value: 3},
			},
		},
		{
			ID:                 "copyist",
			Name:               "Hire Copyist",
			Description:        "A skilled copyist to prepare performance parts.",
			Category:           CategoryStaff,
			Cost:               200,
			RequiredReputation: 15,
			Effects: []UpgradeEffect{
				{Kind: EffectSkillBoost, Target: "productivity", Value: 10},
			},
		},
		{
			ID:                 "salon_invitation",
			Name:               "Salon Invitation",
			Description:        "Gain entry to the Countess von Thun's musical salon.",
			Category:           CategoryConnections,
			Cost:               100,
			RequiredReputation: 5,
			Effects: []UpgradeEffect{
				{Kind: EffectStatBoost, Target: "connections", Value: 10},
				{Kind: EffectSkillBoost, Target: "social", Value: 5},
			},
		},
		{
			ID:                 "grand_study",
			Name:               "Grand Study",
			Description:        "A proper composer's study with excellent acoustics.",
			Category:           CategoryLiving,
			Cost:               500,
			RequiredReputation: 40,
			Effects: []UpgradeEffect{
				{Kind: EffectStatBoost, Target: "maxHealth", Value: 30},
				{Kind: EffectMultiplier, Target: "inspiration", Value: 1.2},
			},
		},
		{
			ID:                 "erard_piano",
			Name:               "Érard Grand Piano",
			Description:        "The finest Parisian instrument, favored by Liszt himself.",
			Category:           CategoryInstrument,
			Cost:               800,
			RequiredReputation: 50,
			Effects: []UpgradeEffect{
				{Kind: EffectSkillBoost, Target: "melody", Value: 10},
				{Kind: EffectSkillBoost, Target: "orchestration", Value: 5},
			},
		},
		{
			ID:                 "assistant",
			Name:               "Musical Assistant",
			Description:        "A talented student to help with arrangements.",
			Category:           CategoryStaff,
			Cost:               400,
			RequiredReputation: 35,
			Effects: []UpgradeEffect{
				{Kind: EffectSkillBoost, Target: "productivity", Value: 15},
				{Kind: EffectSkillBoost, Target: "orchestration", Value: 5},
			},
		},
		{
			ID:                 "publisher_contract",
			Name:               "Publisher Contract",
			Description:        "An exclusive arrangement with Peters Publishing.",
			Category:           CategoryConnections,
			Cost:               350,
			RequiredReputation: 25,
			Effects: []UpgradeEffect{
				{Kind: EffectMultiplier, Target: "earnings", Value: 1.3},
				{Kind: EffectStatBoost, Target: "connections", Value: 15},
			},
		},
		{
			ID:                 "country_retreat",
			Name:               "Country Retreat",
			Description:        "A peaceful cottage for summer composition.",
			Category:           CategoryLiving,
			Cost:               1000,
			RequiredReputation: 70,
			Effects: []UpgradeEffect{
				{Kind: EffectStatBoost, Target: "maxHealth", Value: 50},
				{Kind: EffectMultiplier, Target: "inspiration", Value: 1.5},
			},
		},
		{
			ID:                 "court_position",
			Name:               "Court Position",
			Description:        "Secure a position at the Imperial Court.",
			Category:           CategoryConnections,
			Cost:               600,
			RequiredReputation: 60,
			Effects: []UpgradeEffect{
				{Kind: EffectStatBoost, Target: "connections", Value: 25},
				{Kind: EffectMultiplier, Target: "reputation", Value: 1.2},
			},
		},
	}
}
