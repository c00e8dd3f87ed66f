package tui

import (
	"fmt"
	"strings"

	"github.com/avoigt/kapellmeister/internal/game"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenStart:
		return m.viewStart()
	case screenEvent:
		return m.viewHeader() + m.viewEvent()
	case screenRevival:
		return m.viewHeader() + m.viewRevival()
	case screenResult:
		return m.viewHeader() + m.viewResult()
	case screenGameOver:
		return m.viewGameOver()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewTabs())

	switch m.tab {
	case tabCompose:
		b.WriteString(m.viewCompose())
	case tabPremiere:
		b.WriteString(m.viewPremiere())
	case tabCareer:
		b.WriteString(m.viewCareer())
	case tabUpgrades:
		b.WriteString(m.viewUpgrades())
	case tabHistory:
		b.WriteString(m.viewHistory())
	}

	if m.status != "" {
		b.WriteString("\n" + goodStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("tab: switch  |  enter: select  |  w: pass week  |  q: save & quit"))
	return b.String()
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("K A P E L L M E I S T E R") + "\n\n")
	b.WriteString(statStyle.Render("Vienna, January 1820. A young composer arrives in the city of music.") + "\n\n")
	b.WriteString(labelStyle.Render("What is your name?") + "\n")
	b.WriteString(m.nameInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter: begin  |  esc: quit"))
	return b.String()
}

func (m Model) viewHeader() string {
	s := m.state
	var b strings.Builder
	b.WriteString(titleStyle.Render("KAPELLMEISTER") + "  " +
		statStyle.Render(fmt.Sprintf("%s — %s", s.ComposerName, s.CurrentDate)) + "\n")

	income := ""
	if s.WeeklyPublisherIncome > 0 {
		income = goodStyle.Render(fmt.Sprintf("  (+%d/wk publishing)", s.WeeklyPublisherIncome))
	}
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"Thalers %d%s   Reputation %d   Inspiration %d   Health %d/%d   Connections %d",
		s.Stats.Money, income, s.Stats.Reputation, s.Stats.Inspiration,
		s.Stats.Health, s.Stats.MaxHealth, s.Stats.Connections)) + "\n")

	trends := make([]string, 0, len(s.Tastes.Current))
	for _, t := range s.Tastes.Current {
		trends = append(trends, game.TrendName(t))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("The public craves: %s (intensity %d)",
		strings.Join(trends, " and "), s.Tastes.Intensity)) + "\n\n")
	return b.String()
}

func (m Model) viewTabs() string {
	var parts []string
	for i := tab(0); i < tabCount; i++ {
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(tabNames[i]))
		} else {
			parts = append(parts, tabStyle.Render(tabNames[i]))
		}
	}
	return strings.Join(parts, " ") + "\n\n"
}

func (m Model) viewCompose() string {
	if m.state.WorkInProgress == nil {
		return m.viewComposeWizard()
	}

	w := m.state.WorkInProgress
	spec := game.Forms[w.Form]
	var b strings.Builder
	b.WriteString(labelStyle.Render("In progress: ") + statStyle.Render(w.Title) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s, %s, %s",
		spec.Name, game.Styles[w.Style].Name, game.Instrumentations[w.Instrumentation].Name)) + "\n\n")

	b.WriteString(fmt.Sprintf("  Sketching %d   Orchestration %d   Rehearsal %d   Revision %d\n",
		w.Phases.Sketching, w.Phases.Orchestration, w.Phases.RehearsalPrep, w.Phases.Revision))
	b.WriteString(fmt.Sprintf("  Weeks spent: %d (finishable after %d)   Effort this week: %d points\n\n",
		w.WeeksSpent, game.MinimumWeeks(w.Form), game.WeeklyWorkPoints(m.state.Stats, m.state.Skills)))

	b.WriteString(labelStyle.Render("Weekly focus:") + "\n")
	for i, p := range allocPresets {
		cursor := "  "
		if i == m.allocPreset {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, p.name))
	}

	b.WriteString("\n")
	if game.CanFinish(w) {
		b.WriteString(goodStyle.Render("The work could be finished now (f).") + "\n")
	}
	b.WriteString(helpStyle.Render("enter: work a week  |  f: finish") + "\n")
	return b.String()
}

func (m Model) viewComposeWizard() string {
	var b strings.Builder
	switch m.composeStep {
	case 0:
		b.WriteString(labelStyle.Render("Choose a form:") + "\n")
		for i, f := range game.AllForms {
			spec := game.Forms[f]
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			line := fmt.Sprintf("%s%-16s %d weeks", cursor, spec.Name, spec.BaseWeeks)
			if m.state.Stats.Reputation < spec.RequiredReputation {
				line = dimStyle.Render(fmt.Sprintf("%s  (needs reputation %d)", line, spec.RequiredReputation))
			}
			b.WriteString(line + "\n")
		}
	case 1:
		b.WriteString(labelStyle.Render("Choose a style:") + "\n")
		for i, st := range game.AllStyles {
			spec := game.Styles[st]
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%-16s %s\n", cursor, spec.Name, dimStyle.Render(spec.Description)))
		}
	case 2:
		b.WriteString(labelStyle.Render("Choose the forces:") + "\n")
		for i, inst := range game.AllInstrumentations {
			spec := game.Instrumentations[inst]
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%-20s %d Thalers at the premiere\n", cursor, spec.Name, spec.Cost))
		}
	}
	b.WriteString("\n" + helpStyle.Render("enter: choose  |  esc: back") + "\n")
	return b.String()
}

func (m Model) viewPremiere() string {
	w := m.state.PendingPremiere
	if w == nil {
		return dimStyle.Render("No finished work awaits a premiere. Finish a composition first.") + "\n"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Staging: ") + statStyle.Render(w.Title) + "\n\n")

	b.WriteString(labelStyle.Render("Venue:") + "\n")
	for i, vt := range game.AllVenues {
		v := game.Venues[vt]
		cursor := "  "
		if i == m.venueCursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-22s %4d seats, %d Thalers", cursor, v.Name, v.Capacity, v.Cost)
		if m.state.Stats.Reputation < v.RequiredReputation {
			line = dimStyle.Render(fmt.Sprintf("%s  (needs reputation %d)", line, v.RequiredReputation))
		}
		b.WriteString(line + "\n")
	}

	tier := game.AllMusicianTiers[m.musicianIdx]
	rate := game.MusicianRates[tier]
	b.WriteString(fmt.Sprintf("\n  Musicians (m): %s, %d Thalers\n", tier, rate.Cost))

	dedication := "none"
	if m.dedicationIdx > 0 {
		p := m.state.Patrons[m.dedicationIdx-1]
		dedication = fmt.Sprintf("%s, %s", p.Name, p.Title)
	}
	b.WriteString(fmt.Sprintf("  Dedication (d): %s\n", dedication))
	b.WriteString(fmt.Sprintf("  Advertising (+/-): %d Thalers\n", m.advertising))

	venue := game.Venues[game.AllVenues[m.venueCursor]]
	total := venue.Cost + m.advertising + rate.Cost + game.Instrumentations[w.Instrumentation].Cost
	costLine := fmt.Sprintf("  Total cost: %d Thalers (you have %d)", total, m.state.Stats.Money)
	if total > m.state.Stats.Money {
		costLine = badStyle.Render(costLine)
	}
	b.WriteString("\n" + costLine + "\n")
	b.WriteString(helpStyle.Render("enter: hold the premiere") + "\n")
	return b.String()
}

func (m Model) viewCareer() string {
	s := m.state
	var b strings.Builder

	b.WriteString(labelStyle.Render("Skills") + "\n")
	b.WriteString(fmt.Sprintf("  Melody %d   Harmony %d   Orchestration %d   Form %d   Productivity %d   Social %d\n\n",
		s.Skills.Melody, s.Skills.Harmony, s.Skills.Orchestration,
		s.Skills.Form, s.Skills.Productivity, s.Skills.Social))

	b.WriteString(labelStyle.Render("Patrons") + "\n")
	for _, p := range s.Patrons {
		b.WriteString(fmt.Sprintf("  %-22s %-20s relationship %d\n", p.Name, p.Title, p.Relationship))
	}

	if len(s.AchievedMilestones) > 0 {
		b.WriteString("\n" + labelStyle.Render("Milestones") + "\n")
		for _, id := range s.AchievedMilestones {
			b.WriteString("  ★ " + game.MilestoneName(id) + "\n")
		}
	}

	b.WriteString("\n" + labelStyle.Render("Recent happenings") + "\n")
	for i, entry := range s.EventLog {
		if i >= 8 {
			break
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s — %s", entry.Date, entry.Text)) + "\n")
	}
	return b.String()
}

func (m Model) viewUpgrades() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Improvements to your circumstances:") + "\n")
	for i, u := range m.state.Upgrades {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-20s %4d Thalers", cursor, u.Name, u.Cost)
		switch {
		case u.Purchased:
			line = goodStyle.Render(fmt.Sprintf("%s%-20s owned", cursor, u.Name))
		case m.state.Stats.Reputation < u.RequiredReputation:
			line = dimStyle.Render(fmt.Sprintf("%s  (needs reputation %d)", line, u.RequiredReputation))
		}
		b.WriteString(line + "\n")
	}
	if m.cursor < len(m.state.Upgrades) {
		b.WriteString("\n" + dimStyle.Render(m.state.Upgrades[m.cursor].Description) + "\n")
	}
	return b.String()
}

func (m Model) viewHistory() string {
	works := m.state.CompletedWorks
	if len(works) == 0 {
		return dimStyle.Render("Nothing premiered yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Premiered works:") + "\n")
	for i := len(works) - 1; i >= 0; i-- {
		w := works[i]
		tag := ""
		if w.IsRevival {
			tag = " (revival)"
		}
		b.WriteString(fmt.Sprintf("  %-34s%s  quality %3d  %s\n", w.Title, tag, w.Quality, w.PremiereDate))
		b.WriteString(dimStyle.Render(fmt.Sprintf("      popularity %.0f, publishing income to date %d Thalers",
			w.Popularity, w.TotalPublisherEarnings)) + "\n")
	}
	return b.String()
}

func (m Model) viewEvent() string {
	ev := m.state.CurrentEvent
	if ev == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(ev.Title) + "\n\n")
	b.WriteString(statStyle.Render(ev.Description) + "\n\n")
	for i, c := range ev.Choices {
		cursor := "  "
		if i == m.eventCursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + c.Text + "\n")
		for _, eff := range c.Effects {
			b.WriteString(dimStyle.Render("      "+eff.Description) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("up/down: consider  |  enter: decide"))
	return overlayStyle.Render(b.String()) + "\n"
}

func (m Model) viewRevival() string {
	r := m.state.PendingRevival
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("A Publisher Comes Calling") + "\n\n")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"Interest in %q (quality %d) has stirred again. A new edition and\nperformance could revive it — for 50 Thalers and no small effort.",
		r.WorkTitle, r.OriginalQuality)) + "\n\n")
	b.WriteString(helpStyle.Render("y: revive the work  |  n: let it rest"))
	return overlayStyle.Render(b.String()) + "\n"
}

func (m Model) viewResult() string {
	w := m.lastPremiere
	if w == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("The Premiere of "+w.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("  Quality: %d\n", w.Quality))
	b.WriteString(fmt.Sprintf("  Earnings: %d Thalers\n", w.Earnings))
	b.WriteString(fmt.Sprintf("  Reputation gained: %d\n\n", w.ReputationGained))

	f := w.Factors
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  craft %d, skill %d, fashion %d, venue %d, musicians %d, patron %d",
		f.BaseQuality, f.SkillBonus, f.TrendAlignment, f.VenueMatch, f.MusicianQuality, f.PatronBonus)) + "\n\n")

	b.WriteString(statStyle.Render("The press writes:") + "\n")
	b.WriteString(statStyle.Render("  "+w.Review) + "\n\n")
	b.WriteString(helpStyle.Render("any key: continue"))
	return overlayStyle.Render(b.String()) + "\n"
}

func (m Model) viewGameOver() string {
	s := m.state
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("The Final Cadence") + "\n\n")
	reason := s.GameOverReason
	if reason == "" {
		reason = "the career has ended"
	}
	b.WriteString(statStyle.Render(fmt.Sprintf("%s — %s, %s.", s.ComposerName, reason, s.CurrentDate)) + "\n\n")
	b.WriteString(fmt.Sprintf("  Works premiered: %d\n", len(s.CompletedWorks)))
	b.WriteString(fmt.Sprintf("  Final reputation: %d\n", s.Stats.Reputation))
	b.WriteString(fmt.Sprintf("  Fortune: %d Thalers\n", s.Stats.Money))

	best := ""
	bestQ := -1
	for _, w := range s.CompletedWorks {
		if w.Quality > bestQ {
			bestQ = w.Quality
			best = w.Title
		}
	}
	if best != "" {
		b.WriteString(fmt.Sprintf("  Finest work: %s (quality %d)\n", best, bestQ))
	}
	b.WriteString("\n" + helpStyle.Render("q: leave the hall"))
	return b.String()
}
