package game

import "fmt"

// GameEvents is the narrative event catalogue.
var GameEvents = []GameEvent{
	{
		ID:          "patron_request",
		Title:       "A Noble Request",
		Description: "The Countess von Brunswick has heard of your talents and requests a piano sonata for her upcoming soirée. She offers generous payment, though her musical taste is decidedly old-fashioned.",
		Choices: []EventChoice{
			{
				Text: "Accept graciously",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: 80, Description: "+80 Thalers"},
					{Kind: EventEffectReputation, Value: 5, Description: "+5 Reputation"},
					{Kind: EventEffectInspiration, Value: -10, Description: "-10 Inspiration (tedious work)"},
				},
				Tooltip: "Reliable income but creatively unfulfilling",
			},
			{
				Text: "Politely decline",
				Effects: []EventEffect{
					{Kind: EventEffectInspiration, Value: 10, Description: "+10 Inspiration (artistic freedom)"},
					{Kind: EventEffectReputation, Value: -3, Description: "-3 Reputation"},
				},
				Tooltip: "Maintain your artistic integrity",
			},
		},
	},
	{
		ID:          "illness",
		Title:       "A Fever Takes Hold",
		Description: "You awake with a pounding headache and chills. The doctor recommends rest, but you have compositions to finish.",
		Choices: []EventChoice{
			{
				Text: "Rest as prescribed",
				Effects: []EventEffect{
					{Kind: EventEffectHealth, Value: 20, Description: "+20 Health (proper recovery)"},
					{Kind: EventEffectInspiration, Value: -15, Description: "-15 Inspiration (lost time)"},
				},
				Tooltip: "Your health is your wealth",
			},
			{
				Text: "Work through it",
				Effects: []EventEffect{
					{Kind: EventEffectHealth, Value: -25, Description: "-25 Health (worsening condition)"},
					{Kind: EventEffectSkill, Value: 2, Target: SkillProductivity, Description: "+2 Productivity (discipline)"},
				},
				Tooltip: "Risky but shows dedication",
			},
			{
				Text: "Seek expensive treatment",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -40, Description: "-40 Thalers"},
					{Kind: EventEffectHealth, Value: 30, Description: "+30 Health"},
				},
				Tooltip: "The best care money can buy",
			},
		},
	},
	{
		ID:          "rival_premiere",
		Title:       "A Rival's Triumph",
		Description: "Your contemporary, Herr Hummel, has premiered a new piano concerto to great acclaim. The papers speak of nothing else. You feel the pressure to respond.",
		Choices: []EventChoice{
			{
				Text: "Attend and congratulate him",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 3, Description: "+3 Reputation (gracious gesture)"},
					{Kind: EventEffectConnection, Value: 5, Description: "+5 Connections"},
					{Kind: EventEffectInspiration, Value: 15, Description: "+15 Inspiration (musical insight)"},
				},
				Tooltip: "Learn from your rivals",
			},
			{
				Text: "Redouble your efforts",
				Effects: []EventEffect{
					{Kind: EventEffectSkill, Value: 3, Target: SkillMelody, Description: "+3 Melody skill"},
					{Kind: EventEffectHealth, Value: -10, Description: "-10 Health (overwork)"},
				},
				Tooltip: "Competition drives excellence",
			},
			{
				Text: "Dismiss it publicly",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: -8, Description: "-8 Reputation (seen as jealous)"},
					{Kind: EventEffectInspiration, Value: 5, Description: "+5 Inspiration (defiance)"},
				},
				Tooltip: "A dangerous move",
			},
		},
	},
	{
		ID:          "publisher_offer",
		Title:       "A Publisher's Proposal",
		Description: "Artaria & Co. offers to publish your recent works. They propose either a one-time payment or ongoing royalties.",
		Choices: []EventChoice{
			{
				Text: "Accept one-time payment (150 Thalers)",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: 150, Description: "+150 Thalers (immediate)"},
				},
				Tooltip: "Guaranteed money now",
			},
			{
				Text: "Negotiate royalties",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 8, Description: "+8 Reputation (published composer)"},
					{Kind: EventEffectConnection, Value: 10, Description: "+10 Connections (publisher relationship)"},
				},
				Tooltip: "Better long-term prospects",
			},
			{
				Text: "Refuse - self-publish instead",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -50, Description: "-50 Thalers (printing costs)"},
					{Kind: EventEffectReputation, Value: 5, Description: "+5 Reputation (independent spirit)"},
					{Kind: EventEffectInspiration, Value: 10, Description: "+10 Inspiration (artistic control)"},
				},
				Tooltip: "Expensive but maintains control",
			},
		},
	},
	{
		ID:          "war_news",
		Title:       "War in Europe",
		Description: "Napoleon's armies march again. Concert halls close and patrons flee the city. Times are uncertain.",
		Choices: []EventChoice{
			{
				Text: "Compose patriotic works",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 12, Description: "+12 Reputation (patriotic fervor)"},
					{Kind: EventEffectInspiration, Value: -20, Description: "-20 Inspiration (compromising art)"},
				},
				Tooltip: "Popular but artistically limiting",
			},
			{
				Text: "Continue as before",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -30, Description: "-30 Thalers (reduced income)"},
					{Kind: EventEffectInspiration, Value: 10, Description: "+10 Inspiration (artistic purity)"},
				},
				Tooltip: "Art transcends politics",
			},
			{
				Text: "Leave the city temporarily",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -80, Description: "-80 Thalers (travel costs)"},
					{Kind: EventEffectHealth, Value: 15, Description: "+15 Health (safer location)"},
					{Kind: EventEffectConnection, Value: -10, Description: "-10 Connections (absence)"},
				},
				Tooltip: "Safety first",
			},
		},
	},
	{
		ID:          "instrument_trouble",
		Title:       "The Piano Falls Silent",
		Description: "Your piano has developed a serious fault - several hammers are broken and the tuning is impossible to hold.",
		Choices: []EventChoice{
			{
				Text: "Repair it (40 Thalers)",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -40, Description: "-40 Thalers"},
				},
				Tooltip: "A necessary expense",
			},
			{
				Text: "Borrow a friend's instrument",
				Effects: []EventEffect{
					{Kind: EventEffectConnection, Value: -5, Description: "-5 Connections (inconvenience)"},
					{Kind: EventEffectInspiration, Value: -5, Description: "-5 Inspiration (unfamiliar touch)"},
				},
				Tooltip: "A temporary solution",
			},
			{
				Text: "Compose in silence",
				Effects: []EventEffect{
					{Kind: EventEffectSkill, Value: 4, Target: SkillForm, Description: "+4 Form skill (mental discipline)"},
					{Kind: EventEffectInspiration, Value: -10, Description: "-10 Inspiration"},
				},
				Tooltip: "Beethoven did it...",
			},
		},
	},
	{
		ID:          "virtuoso_visit",
		Title:       "A Famous Visitor",
		Description: "The celebrated pianist Franz Liszt is in town and expresses interest in performing your works. He is brilliant but notorious for taking liberties.",
		Choices: []EventChoice{
			{
				Text: "Welcome his interpretations",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 20, Description: "+20 Reputation (Liszt's endorsement)"},
					{Kind: EventEffectInspiration, Value: -10, Description: "-10 Inspiration (your vision altered)"},
				},
				Tooltip: "Fame at the cost of control",
			},
			{
				Text: "Insist on faithful rendition",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 8, Description: "+8 Reputation (principled)"},
					{Kind: EventEffectSkill, Value: 3, Target: SkillOrchestration, Description: "+3 Orchestration (clearer writing)"},
				},
				Tooltip: "Your art, your way",
			},
			{
				Text: "Collaborate on a new work",
				Effects: []EventEffect{
					{Kind: EventEffectInspiration, Value: 25, Description: "+25 Inspiration (creative exchange)"},
					{Kind: EventEffectSkill, Value: 5, Target: SkillMelody, Description: "+5 Melody skill"},
					{Kind: EventEffectHealth, Value: -15, Description: "-15 Health (intense work)"},
				},
				Tooltip: "Learn from a master",
			},
		},
	},
	{
		ID:          "economic_crisis",
		Title:       "Financial Panic",
		Description: "The banking houses are failing and currency is devalued. Your savings are worth less than yesterday.",
		Choices: []EventChoice{
			{
				Text: "Accept the loss",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -50, Description: "-50 Thalers (devaluation)"},
				},
				Tooltip: "Weather the storm",
			},
			{
				Text: "Seek immediate commissions",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: 30, Description: "+30 Thalers (quick work)"},
					{Kind: EventEffectInspiration, Value: -15, Description: "-15 Inspiration (mercenary work)"},
					{Kind: EventEffectReputation, Value: -5, Description: "-5 Reputation (desperate appearance)"},
				},
				Tooltip: "Survival mode",
			},
		},
	},
	{
		ID:          "musical_debate",
		Title:       "A War of Words",
		Description: "The newspapers are ablaze with debate: should music be \"absolute\" or serve dramatic ends? Critics demand your opinion.",
		Choices: []EventChoice{
			{
				Text: "Champion absolute music",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 5, Description: "+5 Reputation (intellectual stance)"},
					{Kind: EventEffectSkill, Value: 3, Target: SkillForm, Description: "+3 Form skill"},
				},
				Tooltip: "Side with the formalists",
			},
			{
				Text: "Advocate programmatic music",
				Effects: []EventEffect{
					{Kind: EventEffectInspiration, Value: 15, Description: "+15 Inspiration (narrative freedom)"},
					{Kind: EventEffectSkill, Value: 2, Target: SkillOrchestration, Description: "+2 Orchestration"},
				},
				Tooltip: "Music should tell stories",
			},
			{
				Text: "Stay above the fray",
				Effects: []EventEffect{
					{Kind: EventEffectConnection, Value: 5, Description: "+5 Connections (diplomatic)"},
					{Kind: EventEffectHealth, Value: 5, Description: "+5 Health (less stress)"},
				},
				Tooltip: "Let the work speak for itself",
			},
		},
	},
	{
		ID:          "student_request",
		Title:       "A Promising Pupil",
		Description: "A young musician of exceptional talent begs to study with you. Teaching would consume time but could prove rewarding.",
		Choices: []EventChoice{
			{
				Text: "Accept the student",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: 20, Description: "+20 Thalers (tuition)"},
					{Kind: EventEffectSkill, Value: 4, Target: SkillHarmony, Description: "+4 Harmony (teaching clarifies)"},
					{Kind: EventEffectInspiration, Value: -10, Description: "-10 Inspiration (time cost)"},
				},
				Tooltip: "Teaching deepens understanding",
			},
			{
				Text: "Decline - focus on composing",
				Effects: []EventEffect{
					{Kind: EventEffectInspiration, Value: 10, Description: "+10 Inspiration (protected time)"},
				},
				Tooltip: "Guard your creative energy",
			},
		},
	},
	{
		ID:          "royal_invitation",
		Title:       "An Imperial Summons",
		Description: "The Emperor himself requests your presence at a private concert. This could change everything - or be an elaborate trap.",
		Choices: []EventChoice{
			{
				Text: "Attend with your finest work",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: 25, Description: "+25 Reputation (imperial recognition)"},
					{Kind: EventEffectConnection, Value: 20, Description: "+20 Connections (court access)"},
					{Kind: EventEffectMoney, Value: -60, Description: "-60 Thalers (formal attire)"},
				},
				Tooltip: "A once-in-a-lifetime opportunity",
			},
			{
				Text: "Send regrets (claim illness)",
				Effects: []EventEffect{
					{Kind: EventEffectReputation, Value: -10, Description: "-10 Reputation (snub)"},
					{Kind: EventEffectInspiration, Value: 15, Description: "+15 Inspiration (artistic independence)"},
				},
				Tooltip: "Dangerous but principled",
			},
		},
		Requirements: &EventRequirements{MinReputation: 30},
	},
	{
		ID:          "copyist_error",
		Title:       "A Disastrous Mistake",
		Description: "Your copyist has made terrible errors in the orchestral parts. The premiere is in three days.",
		Choices: []EventChoice{
			{
				Text: "Correct them yourself",
				Effects: []EventEffect{
					{Kind: EventEffectHealth, Value: -20, Description: "-20 Health (sleepless nights)"},
					{Kind: EventEffectSkill, Value: 3, Target: SkillProductivity, Description: "+3 Productivity (under pressure)"},
				},
				Tooltip: "Only you can fix this",
			},
			{
				Text: "Postpone the premiere",
				Effects: []EventEffect{
					{Kind: EventEffectMoney, Value: -50, Description: "-50 Thalers (venue fees lost)"},
					{Kind: EventEffectReputation, Value: -5, Description: "-5 Reputation (unreliable)"},
				},
				Tooltip: "Better safe than sorry",
			},
			{
				Text: "Proceed and hope for the best",
				Effects: []EventEffect{
					{Kind: EventEffectInspiration, Value: -25, Description: "-25 Inspiration (artistic compromise)"},
				},
				Tooltip: "A gamble",
			},
		},
	},
}

// RandomEvent draws this week's narrative event, if any: a flat chance
// per invocation, then a uniform pick among events whose reputation
// requirement is met. Returns nil for a quiet week.
func (e *Engine) RandomEvent(reputation int) *GameEvent {
	if !e.chance(e.bal.Events.WeeklyChance) {
		return nil
	}

	var eligible []GameEvent
	for _, ev := range GameEvents {
		if ev.Requirements != nil && reputation < ev.Requirements.MinReputation {
			continue
		}
		eligible = append(eligible, ev)
	}
	if len(eligible) == 0 {
		return nil
	}

	picked := eligible[e.rng.Intn(len(eligible))]
	return &picked
}

// ApplyEventChoice resolves the current event with the chosen response,
// applying every effect with the usual clamps and clearing the event.
func (e *Engine) ApplyEventChoice(s GameState, choice EventChoice) GameState {
	out := s.Clone()

	for _, effect := range choice.Effects {
		switch effect.Kind {
		case EventEffectMoney:
			out.Stats.Money = max(0, out.Stats.Money+effect.Value)
		case EventEffectReputation:
			out.Stats.Reputation = max(0, out.Stats.Reputation+effect.Value)
		case EventEffectHealth:
			out.Stats.Health = clamp(out.Stats.Health+effect.Value, 0, out.Stats.MaxHealth)
		case EventEffectInspiration:
			out.Stats.Inspiration = clamp(out.Stats.Inspiration+effect.Value, 0, 100)
		case EventEffectConnection:
			out.Stats.Connections = max(0, out.Stats.Connections+effect.Value)
		case EventEffectSkill:
			out.Skills.Add(effect.Target, effect.Value)
		}
	}

	if out.CurrentEvent != nil {
		out.appendLog(fmt.Sprintf("%s: Chose %q", out.CurrentEvent.Title, choice.Text), LogEvent)
	}
	out.CurrentEvent = nil
	return out
}
