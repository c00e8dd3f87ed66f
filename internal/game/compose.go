package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// StartComposition begins a new work. Only one composition can be in
// progress at a time, and ambitious forms are gated on reputation.
func (e *Engine) StartComposition(s GameState, form Form, style Style, inst Instrumentation) (GameState, error) {
	if s.IsGameOver {
		return s, ErrGameOver
	}
	if s.WorkInProgress != nil {
		return s, ErrAlreadyComposing
	}
	if s.Stats.Reputation < Forms[form].RequiredReputation {
		return s, ErrReputationTooLow
	}

	out := s.Clone()
	title := e.WorkTitle(form, len(out.CompletedWorks))
	out.WorkInProgress = &WorkInProgress{
		Form:            form,
		Style:           style,
		Instrumentation: inst,
		Title:           title,
	}
	out.appendLog(fmt.Sprintf("Began composing %s.", title), LogComposition)
	return out, nil
}

// WeeklyWorkPoints is the effort the composer can spend this week,
// driven by inspiration and productivity. Never less than 2: even an
// exhausted composer scratches out something.
func WeeklyWorkPoints(stats ComposerStats, skills Skills) int {
	points := int(math.Floor(float64(stats.Inspiration) / 10 * float64(skills.Productivity) / 10))
	if points < 2 {
		points = 2
	}
	return points
}

// ApplyWorkWeek spends one week of effort on the work in progress,
// split across phases by the given percentage allocation. The caller
// advances the calendar separately with AdvanceWeek.
func (e *Engine) ApplyWorkWeek(s GameState, alloc PhaseAllocation) (GameState, error) {
	if s.IsGameOver {
		return s, ErrGameOver
	}
	if s.WorkInProgress == nil {
		return s, ErrNoWorkInProgress
	}

	out := s.Clone()
	points := WeeklyWorkPoints(out.Stats, out.Skills)
	w := out.WorkInProgress
	w.Phases.Sketching += points * alloc.Sketching / 100
	w.Phases.Orchestration += points * alloc.Orchestration / 100
	w.Phases.RehearsalPrep += points * alloc.RehearsalPrep / 100
	w.Phases.Revision += points * alloc.Revision / 100
	w.WeeksSpent++
	return out, nil
}

// MinimumWeeks is how many weeks a form needs before it can be declared
// finished: 60% of its nominal length, rounded up.
func MinimumWeeks(form Form) int {
	return int(math.Ceil(float64(Forms[form].BaseWeeks) * 0.6))
}

// CanFinish reports whether the work in progress has had enough weeks.
func CanFinish(w *WorkInProgress) bool {
	return w != nil && w.WeeksSpent >= MinimumWeeks(w.Form)
}

// FinishComposition moves the work in progress to the premiere slot.
// The previous finished work must be premiered (or nothing pending)
// first; the composer cannot stockpile finished scores.
func (e *Engine) FinishComposition(s GameState) (GameState, error) {
	if s.IsGameOver {
		return s, ErrGameOver
	}
	if s.WorkInProgress == nil {
		return s, ErrNoWorkInProgress
	}
	if !CanFinish(s.WorkInProgress) {
		return s, ErrWorkNotReady
	}
	if s.PendingPremiere != nil {
		return s, ErrPremierePending
	}

	out := s.Clone()
	out.PendingPremiere = out.WorkInProgress
	out.WorkInProgress = nil
	out.appendLog(fmt.Sprintf("Finished composing %s. It awaits its premiere.", out.PendingPremiere.Title), LogComposition)
	return out, nil
}

// SchedulePremiere stages the finished work at a venue and resolves the
// premiere immediately: quality, earnings, reputation, skill growth,
// patron relationship, and the start of the work's publisher life.
func (e *Engine) SchedulePremiere(s GameState, setup PremiereSetup) (GameState, CompletedWork, error) {
	if s.IsGameOver {
		return s, CompletedWork{}, ErrGameOver
	}
	if s.PendingPremiere == nil {
		return s, CompletedWork{}, ErrNoPendingPremiere
	}

	venue := Venues[setup.Venue]
	if s.Stats.Reputation < venue.RequiredReputation {
		return s, CompletedWork{}, ErrReputationTooLow
	}

	work := *s.PendingPremiere
	totalCost := venue.Cost + setup.AdvertisingSpent +
		MusicianRates[setup.Musicians].Cost + Instrumentations[work.Instrumentation].Cost
	if s.Stats.Money < totalCost {
		return s, CompletedWork{}, ErrInsufficientFunds
	}

	out := s.Clone()
	outcome := e.PremiereSuccess(work, out.Skills, out.Tastes, setup)

	earnings := int(math.Round(float64(outcome.Earnings) * purchasedMultiplier(&out, "earnings")))
	reputation := int(math.Round(float64(outcome.ReputationGained) * purchasedMultiplier(&out, "reputation")))

	var dedicatedTo string
	if setup.DedicatedTo != "" {
		if patron := out.PatronByID(setup.DedicatedTo); patron != nil {
			dedicatedTo = patron.Name
			patron.Relationship = clamp(patron.Relationship+15, 0, 100)
		}
	}

	completed := CompletedWork{
		ID:               "work_" + uuid.NewString(),
		Title:            work.Title,
		Form:             work.Form,
		Style:            work.Style,
		Instrumentation:  work.Instrumentation,
		Quality:          outcome.Quality,
		PremiereDate:     out.CurrentDate,
		Venue:            setup.Venue,
		Earnings:         earnings,
		ReputationGained: reputation,
		Review:           outcome.Review,
		DedicatedTo:      dedicatedTo,
		Factors:          outcome.Factors,
		Popularity:       outcome.InitialPopularity,
		PopularitySeeded: true,
	}

	out.Stats.Money += earnings - totalCost
	out.Stats.Reputation += reputation
	out.Stats.Inspiration = clamp(out.Stats.Inspiration+10, 0, 100)

	// A premiere teaches. Good results reinforce the skills that earned
	// them; orchestral forces always sharpen orchestration.
	if outcome.Quality >= 60 {
		out.Skills.Add(SkillMelody, 1)
	}
	if outcome.Quality >= 50 {
		out.Skills.Add(SkillHarmony, 1)
	}
	if outcome.Quality >= 70 {
		out.Skills.Add(SkillForm, 1)
	}
	if Instrumentations[work.Instrumentation].Complexity >= 3 {
		out.Skills.Add(SkillOrchestration, 2)
	}
	out.Skills.Add(SkillProductivity, 1)
	if dedicatedTo != "" {
		out.Skills.Add(SkillSocial, 1)
	}

	out.CompletedWorks = append(out.CompletedWorks, completed)
	out.PendingPremiere = nil
	out.appendLog(fmt.Sprintf("Premiered %s at %s. Quality: %d. %s",
		completed.Title, venue.Name, completed.Quality, completed.Review), LogPremiere)
	return out, completed, nil
}

// PurchaseUpgrade buys the named upgrade if the composer can afford it.
// Stat and skill boosts apply immediately; multipliers stay latent on
// the purchased upgrade and scale later flows.
func (e *Engine) PurchaseUpgrade(s GameState, upgradeID string) (GameState, error) {
	if s.IsGameOver {
		return s, ErrGameOver
	}

	idx := -1
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == upgradeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, ErrUnknownUpgrade
	}
	upgrade := s.Upgrades[idx]
	if upgrade.Purchased {
		return s, ErrAlreadyPurchased
	}
	if s.Stats.Reputation < upgrade.RequiredReputation {
		return s, ErrReputationTooLow
	}
	if s.Stats.Money < upgrade.Cost {
		return s, ErrInsufficientFunds
	}

	out := s.Clone()
	out.Stats.Money -= upgrade.Cost
	out.Upgrades[idx].Purchased = true

	for _, eff := range upgrade.Effects {
		switch eff.Kind {
		case EffectStatBoost:
			applyStatBoost(&out.Stats, eff.Target, int(eff.Value))
		case EffectSkillBoost:
			out.Skills.Add(SkillType(eff.Target), int(eff.Value))
		case EffectMultiplier:
			// latent; consumed by purchasedMultiplier
		}
	}

	out.appendLog(fmt.Sprintf("Purchased %s.", upgrade.Name), LogUpgrade)
	return out, nil
}

func applyStatBoost(stats *ComposerStats, target string, value int) {
	switch target {
	case "maxHealth":
		stats.MaxHealth += value
		stats.Health = clamp(stats.Health+value, 0, stats.MaxHealth)
	case "health":
		stats.Health = clamp(stats.Health+value, 0, stats.MaxHealth)
	case "inspiration":
		stats.Inspiration = clamp(stats.Inspiration+value, 0, 100)
	case "connections":
		stats.Connections += value
	case "money":
		stats.Money += value
	case "reputation":
		stats.Reputation += value
	}
}
