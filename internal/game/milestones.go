package game

import "fmt"

// milestone is a named one-way achievement predicate.
type milestone struct {
	id        string
	name      string
	satisfied func(*GameState) bool
}

// milestones are evaluated in order; each fires at most once per game.
var milestones = []milestone{
	{"first_work", "First Performance", func(s *GameState) bool {
		return len(s.CompletedWorks) >= 1
	}},
	{"reputation_25", "Rising Talent", func(s *GameState) bool {
		return s.Stats.Reputation >= 25
	}},
	{"reputation_50", "Established Composer", func(s *GameState) bool {
		return s.Stats.Reputation >= 50
	}},
	{"reputation_100", "Minor Famous Composer", func(s *GameState) bool {
		return s.Stats.Reputation >= 100
	}},
	{"five_works", "Prolific Artist", func(s *GameState) bool {
		return len(s.CompletedWorks) >= 5
	}},
	{"symphony_premiere", "Symphonist", func(s *GameState) bool {
		for _, w := range s.CompletedWorks {
			if w.Form == FormSymphony {
				return true
			}
		}
		return false
	}},
	{"wealthy", "Comfortable Living", func(s *GameState) bool {
		return s.Stats.Money >= 1000
	}},
	{"patron_favor", "Patron's Favorite", func(s *GameState) bool {
		for _, p := range s.Patrons {
			if p.Relationship >= 50 {
				return true
			}
		}
		return false
	}},
}

// CheckMilestones appends newly satisfied milestones to the achieved set
// and logs each one. Idempotent: an unchanged state reports nothing new.
func (e *Engine) CheckMilestones(s GameState) (GameState, []string) {
	out := s.Clone()
	var newNames []string

	for _, m := range milestones {
		if out.hasMilestone(m.id) || !m.satisfied(&out) {
			continue
		}
		out.AchievedMilestones = append(out.AchievedMilestones, m.id)
		out.appendLog(fmt.Sprintf("Achievement unlocked: %s!", m.name), LogSystem)
		newNames = append(newNames, m.name)
	}

	return out, newNames
}

// MilestoneName returns the display name for an achieved milestone id.
func MilestoneName(id string) string {
	for _, m := range milestones {
		if m.id == id {
			return m.name
		}
	}
	return id
}

func (s *GameState) hasMilestone(id string) bool {
	for _, have := range s.AchievedMilestones {
		if have == id {
			return true
		}
	}
	return false
}
