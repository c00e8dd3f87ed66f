// Package game implements the composer-career simulation core.
// It contains no TUI or storage dependencies (following the same rule as
// keeping Bubble Tea out of game logic): every operation is a pure
// transform from a state value plus inputs to a new state value, so the
// whole package is unit-testable with an injected random source.
package game

import "fmt"

// Form is a categorical work type with fixed difficulty metadata.
type Form string

const (
	FormPianoSonata   Form = "piano_sonata"
	FormStringQuartet Form = "string_quartet"
	FormSymphony      Form = "symphony"
	FormLied          Form = "lied"
	FormOpera         Form = "opera"
	FormMass          Form = "mass"
	FormConcerto      Form = "concerto"
)

// Style is a compositional idiom scaling skill contributions.
type Style string

const (
	StyleClassical     Style = "classical"
	StyleEarlyRomantic Style = "early_romantic"
	StyleLateRomantic  Style = "late_romantic"
)

// Instrumentation is the performing-forces choice for a work.
type Instrumentation string

const (
	InstSoloPiano         Instrumentation = "solo_piano"
	InstChamberEnsemble   Instrumentation = "chamber_ensemble"
	InstSmallOrchestra    Instrumentation = "small_orchestra"
	InstFullOrchestra     Instrumentation = "full_orchestra"
	InstVoiceAndPiano     Instrumentation = "voice_and_piano"
	InstChoirAndOrchestra Instrumentation = "choir_and_orchestra"
)

// VenueType identifies one of the five premiere venues.
type VenueType string

const (
	VenueSalon       VenueType = "salon"
	VenueChurch      VenueType = "church"
	VenueSmallHall   VenueType = "small_hall"
	VenueConcertHall VenueType = "concert_hall"
	VenueOperaHouse  VenueType = "opera_house"
)

// TasteTrend is a public-preference category. Exactly two distinct
// trends are active at a time, never both members of an opposite pair.
type TasteTrend string

const (
	TrendVirtuosity   TasteTrend = "virtuosity"
	TrendLyricism     TasteTrend = "lyricism"
	TrendSacred       TasteTrend = "sacred"
	TrendSecular      TasteTrend = "secular"
	TrendNationalist  TasteTrend = "nationalist"
	TrendCosmopolitan TasteTrend = "cosmopolitan"
)

// SkillType names one of the six composer skills.
type SkillType string

const (
	SkillMelody        SkillType = "melody"
	SkillHarmony       SkillType = "harmony"
	SkillOrchestration SkillType = "orchestration"
	SkillForm          SkillType = "form"
	SkillProductivity  SkillType = "productivity"
	SkillSocial        SkillType = "social"
)

// MusicianTier is the hired-performer quality for a premiere.
type MusicianTier string

const (
	MusiciansAmateur      MusicianTier = "amateur"
	MusiciansCompetent    MusicianTier = "competent"
	MusiciansProfessional MusicianTier = "professional"
	MusiciansVirtuoso     MusicianTier = "virtuoso"
)

// GameDate is the in-game calendar: 4 weeks per month, 12 months per year.
type GameDate struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 0-11
	Week  int `json:"week"`  // 1-4
}

// TotalWeeks returns the number of weeks elapsed since year 0, month 0, week 1.
func (d GameDate) TotalWeeks() int {
	return d.Year*48 + d.Month*4 + (d.Week - 1)
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (d GameDate) String() string {
	m := "?"
	if d.Month >= 0 && d.Month < 12 {
		m = monthNames[d.Month]
	}
	return fmt.Sprintf("%s, Week %d, %d", m, d.Week, d.Year)
}

// ComposerStats are the mutable resources of the composer.
type ComposerStats struct {
	Money       int `json:"money"`
	Reputation  int `json:"reputation"`
	Inspiration int `json:"inspiration"` // 0-100
	Health      int `json:"health"`      // 0-MaxHealth
	MaxHealth   int `json:"maxHealth"`
	Connections int `json:"connections"`
}

// Skills are 0-100 and only ever increase in normal play.
type Skills struct {
	Melody        int `json:"melody"`
	Harmony       int `json:"harmony"`
	Orchestration int `json:"orchestration"`
	Form          int `json:"form"`
	Productivity  int `json:"productivity"`
	Social        int `json:"social"`
}

// Add raises the named skill by delta, clamped to [0,100].
func (s *Skills) Add(skill SkillType, delta int) {
	switch skill {
	case SkillMelody:
		s.Melody = clamp(s.Melody+delta, 0, 100)
	case SkillHarmony:
		s.Harmony = clamp(s.Harmony+delta, 0, 100)
	case SkillOrchestration:
		s.Orchestration = clamp(s.Orchestration+delta, 0, 100)
	case SkillForm:
		s.Form = clamp(s.Form+delta, 0, 100)
	case SkillProductivity:
		s.Productivity = clamp(s.Productivity+delta, 0, 100)
	case SkillSocial:
		s.Social = clamp(s.Social+delta, 0, 100)
	}
}

// TasteState holds the two active trends and how strongly they bite.
type TasteState struct {
	Current   []TasteTrend `json:"current"`
	Intensity int          `json:"intensity"` // 0-100
}

// Phases are the four accumulating effort counters of a work in progress.
type Phases struct {
	Sketching     int `json:"sketching"`
	Orchestration int `json:"orchestration"`
	RehearsalPrep int `json:"rehearsalPrep"`
	Revision      int `json:"revision"`
}

// Total returns the sum of all phase points.
func (p Phases) Total() int {
	return p.Sketching + p.Orchestration + p.RehearsalPrep + p.Revision
}

// PhaseAllocation splits a week's effort across phases, in percent.
// The four fields are expected to sum to 100.
type PhaseAllocation struct {
	Sketching     int `json:"sketching"`
	Orchestration int `json:"orchestration"`
	RehearsalPrep int `json:"rehearsalPrep"`
	Revision      int `json:"revision"`
}

// WorkInProgress is the single active composition.
type WorkInProgress struct {
	Form            Form            `json:"form"`
	Style           Style           `json:"style"`
	Instrumentation Instrumentation `json:"instrumentation"`
	Phases          Phases          `json:"phases"`
	WeeksSpent      int             `json:"weeksSpent"`
	Title           string          `json:"title"`
}

// ScoreFactors is the stored quality breakdown of a premiere. The six
// fields always sum to the reported quality; any soft-cap or clamp
// adjustment is folded into BaseQuality.
type ScoreFactors struct {
	BaseQuality     int `json:"baseQuality"`
	SkillBonus      int `json:"skillBonus"`
	TrendAlignment  int `json:"trendAlignment"`
	VenueMatch      int `json:"venueMatch"`
	MusicianQuality int `json:"musicianQuality"`
	PatronBonus     int `json:"patronBonus"`
}

// Sum returns the total of all six factors.
func (f ScoreFactors) Sum() int {
	return f.BaseQuality + f.SkillBonus + f.TrendAlignment +
		f.VenueMatch + f.MusicianQuality + f.PatronBonus
}

// CompletedWork is an immutable premiere record, except for the fields
// the weekly publisher tick maintains (popularity, weeks since premiere,
// cumulative publisher earnings).
type CompletedWork struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Form             Form            `json:"form"`
	Style            Style           `json:"style"`
	Instrumentation  Instrumentation `json:"instrumentation"`
	Quality          int             `json:"quality"`
	PremiereDate     GameDate        `json:"premiereDate"`
	Venue            VenueType       `json:"venue"`
	Earnings         int             `json:"earnings"`
	ReputationGained int             `json:"reputationGained"`
	Review           string          `json:"review"`
	DedicatedTo      string          `json:"dedicatedTo,omitempty"`
	Factors          ScoreFactors    `json:"factors"`

	// Extended lifecycle, maintained by the weekly tick. PopularitySeeded
	// distinguishes a fully decayed work (popularity 0) from a legacy
	// save that predates popularity tracking.
	Popularity             float64 `json:"popularity"`
	PopularitySeeded       bool    `json:"popularitySeeded"`
	WeeksSincePremiere     int     `json:"weeksSincePremiere"`
	TotalPublisherEarnings int     `json:"totalPublisherEarnings"`
	IsRevival              bool    `json:"isRevival"`
	OriginalWorkID         string  `json:"originalWorkId,omitempty"`
}

// Patron is a member of the fixed patron roster.
type Patron struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	PreferredForms []Form `json:"preferredForms"`
	PreferredStyle Style  `json:"preferredStyle"`
	Generosity     int    `json:"generosity"`
	Relationship   int    `json:"relationship"` // 0-100
}

// UpgradeCategory groups purchasable upgrades.
type UpgradeCategory string

const (
	CategoryLiving      UpgradeCategory = "living"
	CategoryInstrument  UpgradeCategory = "instrument"
	CategoryStaff       UpgradeCategory = "staff"
	CategoryConnections UpgradeCategory = "connections"
)

// UpgradeEffectKind is a closed set; every switch over it handles all
// kinds so that adding one is a compile-visible change.
type UpgradeEffectKind string

const (
	EffectStatBoost  UpgradeEffectKind = "stat_boost"
	EffectSkillBoost UpgradeEffectKind = "skill_boost"
	EffectMultiplier UpgradeEffectKind = "multiplier"
)

// UpgradeEffect is one consequence of purchasing an upgrade. Boosts are
// applied once at purchase time; multipliers stay latent on the purchased
// upgrade and scale later flows (earnings, reputation, inspiration regen).
type UpgradeEffect struct {
	Kind   UpgradeEffectKind `json:"type"`
	Target string            `json:"target"`
	Value  float64           `json:"value"`
}

// Upgrade is a one-way purchase gated on money and reputation.
type Upgrade struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           UpgradeCategory `json:"category"`
	Cost               int             `json:"cost"`
	Effects            []UpgradeEffect `json:"effects"`
	RequiredReputation int             `json:"requiredReputation"`
	Purchased          bool            `json:"purchased"`
}

// EventEffectKind is the closed set of narrative-event consequences.
type EventEffectKind string

const (
	EventEffectMoney       EventEffectKind = "money"
	EventEffectReputation  EventEffectKind = "reputation"
	EventEffectInspiration EventEffectKind = "inspiration"
	EventEffectHealth      EventEffectKind = "health"
	EventEffectSkill       EventEffectKind = "skill"
	EventEffectConnection  EventEffectKind = "connection"
)

// EventEffect is one signed change from an event choice. Target is only
// set for skill effects.
type EventEffect struct {
	Kind        EventEffectKind `json:"type"`
	Value       int             `json:"value"`
	Target      SkillType       `json:"target,omitempty"`
	Description string          `json:"description"`
}

// EventChoice is one selectable response to a narrative event.
type EventChoice struct {
	Text    string        `json:"text"`
	Effects []EventEffect `json:"effects"`
	Tooltip string        `json:"tooltip,omitempty"`
}

// EventRequirements gate which events a composer can draw.
type EventRequirements struct {
	MinReputation int `json:"minReputation,omitempty"`
}

// GameEvent is a random narrative event with player choices.
type GameEvent struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Choices      []EventChoice      `json:"choices"`
	Requirements *EventRequirements `json:"requirements,omitempty"`
}

// LogType classifies event-log entries.
type LogType string

const (
	LogEvent       LogType = "event"
	LogPremiere    LogType = "premiere"
	LogComposition LogType = "composition"
	LogUpgrade     LogType = "upgrade"
	LogSystem      LogType = "system"
)

// LogEntry is one line of the bounded, newest-first event log.
type LogEntry struct {
	ID   string   `json:"id"`
	Date GameDate `json:"date"`
	Text string   `json:"text"`
	Type LogType  `json:"type"`
}

// PremiereSetup is the player's staging choices for a premiere.
type PremiereSetup struct {
	Venue            VenueType    `json:"venue"`
	Musicians        MusicianTier `json:"musicianQuality"`
	DedicatedTo      string       `json:"dedicatedTo,omitempty"` // patron id
	AdvertisingSpent int          `json:"advertisingSpent"`
}

// RevivalOpportunity is the at-most-one pending offer to re-premiere an
// old, fully decayed work.
type RevivalOpportunity struct {
	WorkID          string `json:"workId"`
	WorkTitle       string `json:"workTitle"`
	OriginalQuality int    `json:"originalQuality"`
}

// GameState is the aggregate root and the unit of persistence.
type GameState struct {
	Started                bool                `json:"started"`
	ComposerName           string              `json:"composerName"`
	CurrentDate            GameDate            `json:"currentDate"`
	Stats                  ComposerStats       `json:"stats"`
	Skills                 Skills              `json:"skills"`
	Tastes                 TasteState          `json:"tastes"`
	WorkInProgress         *WorkInProgress     `json:"workInProgress,omitempty"`
	PendingPremiere        *WorkInProgress     `json:"pendingPremiere,omitempty"`
	CompletedWorks         []CompletedWork     `json:"completedWorks"`
	Patrons                []Patron            `json:"patrons"`
	Upgrades               []Upgrade           `json:"upgrades"`
	EventLog               []LogEntry          `json:"eventLog"`
	CurrentEvent           *GameEvent          `json:"currentEvent,omitempty"`
	PendingRevival         *RevivalOpportunity `json:"pendingRevival,omitempty"`
	AchievedMilestones     []string            `json:"achievedMilestones"`
	WeeklyPublisherIncome  int                 `json:"weeklyPublisherIncome"`
	IsGameOver             bool                `json:"isGameOver"`
	GameOverReason         string              `json:"gameOverReason,omitempty"`
}

// Clone returns a deep copy. Engine transforms clone the input first so
// callers never observe partial mutation of the state they passed in.
func (s GameState) Clone() GameState {
	out := s
	out.Tastes.Current = append([]TasteTrend(nil), s.Tastes.Current...)
	if s.WorkInProgress != nil {
		w := *s.WorkInProgress
		out.WorkInProgress = &w
	}
	if s.PendingPremiere != nil {
		w := *s.PendingPremiere
		out.PendingPremiere = &w
	}
	out.CompletedWorks = append([]CompletedWork(nil), s.CompletedWorks...)
	out.Patrons = make([]Patron, len(s.Patrons))
	for i, p := range s.Patrons {
		p.PreferredForms = append([]Form(nil), p.PreferredForms...)
		out.Patrons[i] = p
	}
	out.Upgrades = make([]Upgrade, len(s.Upgrades))
	for i, u := range s.Upgrades {
		u.Effects = append([]UpgradeEffect(nil), u.Effects...)
		out.Upgrades[i] = u
	}
	out.EventLog = append([]LogEntry(nil), s.EventLog...)
	if s.CurrentEvent != nil {
		e := *s.CurrentEvent
		out.CurrentEvent = &e
	}
	if s.PendingRevival != nil {
		r := *s.PendingRevival
		out.PendingRevival = &r
	}
	out.AchievedMilestones = append([]string(nil), s.AchievedMilestones...)
	return out
}

// WorkByID looks up a completed work.
func (s *GameState) WorkByID(id string) *CompletedWork {
	for i := range s.CompletedWorks {
		if s.CompletedWorks[i].ID == id {
			return &s.CompletedWorks[i]
		}
	}
	return nil
}

// PatronByID looks up a patron.
func (s *GameState) PatronByID(id string) *Patron {
	for i := range s.Patrons {
		if s.Patrons[i].ID == id {
			return &s.Patrons[i]
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
