package game

import "math"

// PremiereOutcome is the full result of resolving a premiere.
type PremiereOutcome struct {
	Quality           int
	Factors           ScoreFactors
	Earnings          int
	ReputationGained  int
	Review            string
	InitialPopularity float64
}

// diminish applies diminishing returns to a raw skill value: points above
// 15 count half.
func diminish(v int) float64 {
	if v <= 15 {
		return float64(v)
	}
	return 15 + float64(v-15)*0.5
}

// phaseBalance scores how evenly effort was spread across the four
// phases: 1.0 for a perfect 25% split, 0 for all effort in one phase
// (or no effort at all).
func phaseBalance(p Phases) float64 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	values := [4]int{p.Sketching, p.Orchestration, p.RehearsalPrep, p.Revision}
	var devSum float64
	for _, v := range values {
		devSum += math.Abs(float64(v)/float64(total) - 0.25)
	}
	return 1 - (devSum/4)*4
}

// BaseQuality computes the pre-bonus quality of a work, including the
// luck draw. The result is bounded by the base-quality cap (75 by
// default), so bonuses are required to reach masterpiece territory.
func (e *Engine) BaseQuality(work WorkInProgress, skills Skills) int {
	luck := e.intBetween(e.bal.Scoring.LuckMin, e.bal.Scoring.LuckMax)
	return e.baseQualityWithLuck(work, skills, luck)
}

func (e *Engine) baseQualityWithLuck(work WorkInProgress, skills Skills, luck int) int {
	form := Forms[work.Form]
	style := Styles[work.Style]

	melody := diminish(skills.Melody) * style.Melody
	harmony := diminish(skills.Harmony) * style.Harmony
	orch := diminish(skills.Orchestration) * style.Orch
	formSkill := diminish(skills.Form)
	skillAverage := (melody + harmony + orch + formSkill) / 4

	total := float64(work.Phases.Total())
	efficiency := math.Min(1.2, total/float64(form.BaseWeeks*8))

	q := skillAverage*0.4 + phaseBalance(work.Phases)*12 + efficiency*20
	q -= float64((form.Difficulty - 1) * 3)
	q += float64(luck)

	return clamp(int(math.Round(q)), 0, e.bal.Scoring.BaseQualityCap)
}

// TrendAlignment scores how well a work rides the current public taste:
// +15 per active trend favoring its form, +10 per active trend favoring
// its style, scaled by intensity (50 = neutral).
func TrendAlignment(work WorkInProgress, tastes TasteState) int {
	alignment := 0
	for _, trend := range tastes.Current {
		effect := trendEffects[trend]
		for _, f := range effect.forms {
			if f == work.Form {
				alignment += 15
				break
			}
		}
		for _, s := range effect.styles {
			if s == work.Style {
				alignment += 10
				break
			}
		}
	}
	return int(math.Round(float64(alignment) * float64(tastes.Intensity) / 50))
}

// VenueMatch scores the fit between a work and a venue. The result is
// always one of +20 (ideal), -15 (grand work in a tiny room), -10
// (trivial work in a huge hall), or +5 (neutral).
func VenueMatch(work WorkInProgress, venueType VenueType) int {
	venue := Venues[venueType]
	for _, f := range venue.BestFor {
		if f == work.Form {
			return 20
		}
	}
	complexity := Instrumentations[work.Instrumentation].Complexity
	if venue.Capacity < 100 && complexity > 3 {
		return -15
	}
	if venue.Capacity > 1000 && complexity < 2 {
		return -10
	}
	return 5
}

// MusicianBonus scores the hired performers. Better musicians matter
// more for complex forces.
func MusicianBonus(tier MusicianTier, inst Instrumentation) int {
	mult := MusicianRates[tier].Multiplier
	complexity := Instrumentations[inst].Complexity
	base := (mult - 1) * 30
	complexityBonus := (complexity - 1) * 2 * (mult - 0.7)
	return int(math.Round(base + complexityBonus))
}

// PremiereSuccess composes the factor functions into a full premiere
// outcome. Raw factor totals above the soft-cap threshold are
// compressed, which keeps qualities above ~92 rare; the cap (and the
// final [0,100] clamp) difference is folded into the BaseQuality factor
// so the stored breakdown sums to the reported quality.
func (e *Engine) PremiereSuccess(work WorkInProgress, skills Skills, tastes TasteState, setup PremiereSetup) PremiereOutcome {
	factors := ScoreFactors{
		BaseQuality:     e.BaseQuality(work, skills),
		TrendAlignment:  TrendAlignment(work, tastes),
		VenueMatch:      VenueMatch(work, setup.Venue),
		MusicianQuality: MusicianBonus(setup.Musicians, work.Instrumentation),
	}

	avgSkill := float64(skills.Melody+skills.Harmony+skills.Orchestration+skills.Form) / 4
	if bonus := int(math.Round((avgSkill - 15) * 0.3)); bonus > 0 {
		factors.SkillBonus = bonus
	}
	if setup.DedicatedTo != "" {
		factors.PatronBonus = 5
	}

	raw := float64(factors.Sum())
	total := raw
	if threshold := e.bal.Scoring.SoftCapThreshold; total > threshold {
		total = threshold + (total-threshold)*e.bal.Scoring.SoftCapFactor
	}
	quality := clamp(int(math.Round(total)), 0, 100)
	factors.BaseQuality += quality - factors.Sum()

	venue := Venues[setup.Venue]
	form := Forms[work.Form]
	qf := float64(quality) / 100

	return PremiereOutcome{
		Quality:           quality,
		Factors:           factors,
		Earnings:          int(math.Round(float64(venue.Capacity)*qf*0.8 + float64(setup.AdvertisingSpent)*2)),
		ReputationGained:  int(math.Round(float64(form.Difficulty)*qf*3 + float64(venue.Prestige)*2)),
		Review:            e.review(quality, work),
		InitialPopularity: math.Min(100, math.Round(float64(quality)*0.8+float64(venue.Prestige)*5)),
	}
}
