package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// revivalEligibleWeeks is how long a work must have been out before a
// publisher considers reviving it.
const revivalEligibleWeeks = 52

// revivalMinQuality is the lowest quality a publisher will touch.
const revivalMinQuality = 50

// runPublisherWeek applies the weekly publisher pass to every completed
// work: popularity seeding for legacy saves, royalty accrual, popularity
// decay, and the revival roll. Mutates the (already cloned) state.
func (e *Engine) runPublisherWeek(s *GameState) {
	income := 0
	for i := range s.CompletedWorks {
		w := &s.CompletedWorks[i]
		w.WeeksSincePremiere++

		// Saves from before popularity tracking get a late seed.
		if !w.PopularitySeeded {
			w.Popularity = math.Min(100, float64(w.Quality+20))
			w.PopularitySeeded = true
		}

		if w.Popularity <= 0 {
			continue
		}

		difficulty := float64(Forms[w.Form].Difficulty)
		qf := float64(w.Quality) / 100
		weekly := int(math.Round(difficulty * 0.5 * qf * (w.Popularity / 100) * 2))
		income += weekly
		w.TotalPublisherEarnings += weekly

		// Harder forms and better works decay slower; decay never
		// drops below the configured floor.
		decay := math.Max(0.5, 3-difficulty*0.4) - qf*0.5
		decay = math.Max(e.bal.Publisher.DecayFloor, decay)
		w.Popularity = math.Max(0, w.Popularity-decay)
	}

	s.WeeklyPublisherIncome = income
	s.Stats.Money += income

	if s.PendingRevival == nil {
		e.rollRevival(s)
	}
}

// rollRevival gives each eligible work its weekly revival chance, in
// completion order; the first success claims the single opportunity slot.
func (e *Engine) rollRevival(s *GameState) {
	for i := range s.CompletedWorks {
		w := &s.CompletedWorks[i]
		if !e.revivalEligible(s, w) {
			continue
		}
		if e.chance(e.bal.Publisher.RevivalChance) {
			s.PendingRevival = &RevivalOpportunity{
				WorkID:          w.ID,
				WorkTitle:       w.Title,
				OriginalQuality: w.Quality,
			}
			return
		}
	}
}

// revivalEligible requires all conditions at once: fully decayed, at
// least a year old, good enough, not itself a revival, and never
// revived before.
func (e *Engine) revivalEligible(s *GameState, w *CompletedWork) bool {
	if !w.PopularitySeeded || w.Popularity != 0 {
		return false
	}
	if w.WeeksSincePremiere < revivalEligibleWeeks {
		return false
	}
	if w.Quality < revivalMinQuality {
		return false
	}
	if w.IsRevival {
		return false
	}
	for i := range s.CompletedWorks {
		if s.CompletedWorks[i].OriginalWorkID == w.ID {
			return false
		}
	}
	return true
}

// AcceptRevival spends the revival costs and re-premieres the work: the
// composer's grown melody and harmony lift the original quality, and the
// revival starts its own royalty stream.
func (e *Engine) AcceptRevival(s GameState) (GameState, CompletedWork, error) {
	if s.IsGameOver {
		return s, CompletedWork{}, ErrGameOver
	}
	if s.PendingRevival == nil {
		return s, CompletedWork{}, ErrNoPendingRevival
	}
	if s.Stats.Money < e.bal.Revival.Cost {
		return s, CompletedWork{}, ErrInsufficientFunds
	}
	if s.Stats.Inspiration < e.bal.Revival.InspirationCost {
		return s, CompletedWork{}, ErrLowInspiration
	}

	out := s.Clone()
	original := out.WorkByID(out.PendingRevival.WorkID)
	if original == nil {
		out.PendingRevival = nil
		return out, CompletedWork{}, ErrNoPendingRevival
	}

	boost := int(math.Round(float64(out.Skills.Melody+out.Skills.Harmony) / 10))
	quality := clamp(original.Quality+boost+e.rng.Intn(10), 0, 100)
	earnings := quality * 5
	reputation := int(math.Round(float64(quality) / 10))

	revival := CompletedWork{
		ID:               "work_" + uuid.NewString(),
		Title:            original.Title,
		Form:             original.Form,
		Style:            original.Style,
		Instrumentation:  original.Instrumentation,
		Quality:          quality,
		PremiereDate:     out.CurrentDate,
		Venue:            original.Venue,
		Earnings:         earnings,
		ReputationGained: reputation,
		Review: e.review(quality, WorkInProgress{
			Form:  original.Form,
			Style: original.Style,
		}),
		Factors:          ScoreFactors{BaseQuality: quality},
		Popularity:       math.Min(100, float64(quality+10)),
		PopularitySeeded: true,
		IsRevival:        true,
		OriginalWorkID:   original.ID,
	}

	out.Stats.Money += earnings - e.bal.Revival.Cost
	out.Stats.Inspiration -= e.bal.Revival.InspirationCost
	out.Stats.Reputation += reputation
	out.CompletedWorks = append(out.CompletedWorks, revival)
	out.PendingRevival = nil
	out.appendLog(fmt.Sprintf("Revived %q to renewed acclaim. Quality: %d.", revival.Title, quality), LogPremiere)
	return out, revival, nil
}

// DeclineRevival clears the pending opportunity.
func (e *Engine) DeclineRevival(s GameState) GameState {
	out := s.Clone()
	out.PendingRevival = nil
	return out
}
