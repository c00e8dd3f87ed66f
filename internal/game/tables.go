package game

// Static reference tables. These are read-only configuration data
// consumed throughout the engine, never derived at runtime.

// FormSpec holds the fixed metadata of a composition form.
type FormSpec struct {
	Name                string
	Difficulty          int // 1-6
	BaseWeeks           int
	RequiredReputation  int
	Description         string
	BestInstrumentation []Instrumentation
}

// Forms is the composition-form table.
var Forms = map[Form]FormSpec{
	FormPianoSonata: {
		Name:                "Piano Sonata",
		Difficulty:          2,
		BaseWeeks:           3,
		RequiredReputation:  0,
		Description:         "An intimate work showcasing pianistic mastery",
		BestInstrumentation: []Instrumentation{InstSoloPiano},
	},
	FormStringQuartet: {
		Name:                "String Quartet",
		Difficulty:          3,
		BaseWeeks:           4,
		RequiredReputation:  10,
		Description:         "The purest test of compositional craft",
		BestInstrumentation: []Instrumentation{InstChamberEnsemble},
	},
	FormLied: {
		Name:                "Lied",
		Difficulty:          1,
		BaseWeeks:           2,
		RequiredReputation:  0,
		Description:         "A German art song for voice and piano",
		BestInstrumentation: []Instrumentation{InstVoiceAndPiano},
	},
	FormSymphony: {
		Name:                "Symphony",
		Difficulty:          5,
		BaseWeeks:           8,
		RequiredReputation:  50,
		Description:         "The grandest orchestral statement",
		BestInstrumentation: []Instrumentation{InstFullOrchestra},
	},
	FormConcerto: {
		Name:                "Concerto",
		Difficulty:          4,
		BaseWeeks:           6,
		RequiredReputation:  30,
		Description:         "A dialogue between soloist and orchestra",
		BestInstrumentation: []Instrumentation{InstFullOrchestra, InstSmallOrchestra},
	},
	FormOpera: {
		Name:                "Opera",
		Difficulty:          6,
		BaseWeeks:           12,
		RequiredReputation:  80,
		Description:         "The ultimate dramatic musical work",
		BestInstrumentation: []Instrumentation{InstChoirAndOrchestra, InstFullOrchestra},
	},
	FormMass: {
		Name:                "Mass",
		Difficulty:          4,
		BaseWeeks:           6,
		RequiredReputation:  40,
		Description:         "Sacred music for chorus and orchestra",
		BestInstrumentation: []Instrumentation{InstChoirAndOrchestra},
	},
}

// AllForms lists forms in menu order.
var AllForms = []Form{
	FormLied, FormPianoSonata, FormStringQuartet, FormConcerto,
	FormMass, FormSymphony, FormOpera,
}

// StyleSpec scales how each skill contributes to base quality.
type StyleSpec struct {
	Name        string
	Description string
	Melody      float64
	Harmony     float64
	Orch        float64
}

// Styles is the compositional-style table.
var Styles = map[Style]StyleSpec{
	StyleClassical: {
		Name:        "Classical",
		Description: "Formal elegance in the manner of Haydn and Mozart",
		Melody:      1.0, Harmony: 0.9, Orch: 0.8,
	},
	StyleEarlyRomantic: {
		Name:        "Early Romantic",
		Description: "Emotional expressiveness with structural balance",
		Melody:      1.1, Harmony: 1.0, Orch: 1.0,
	},
	StyleLateRomantic: {
		Name:        "Late Romantic",
		Description: "Grand gestures and rich orchestral colors",
		Melody:      1.0, Harmony: 1.2, Orch: 1.3,
	},
}

// AllStyles lists styles in menu order.
var AllStyles = []Style{StyleClassical, StyleEarlyRomantic, StyleLateRomantic}

// InstrumentationSpec holds cost and scoring complexity of the forces.
type InstrumentationSpec struct {
	Name       string
	Cost       int
	Complexity float64
}

// Instrumentations is the performing-forces table.
var Instrumentations = map[Instrumentation]InstrumentationSpec{
	InstSoloPiano:         {Name: "Solo Piano", Cost: 0, Complexity: 1},
	InstVoiceAndPiano:     {Name: "Voice and Piano", Cost: 15, Complexity: 1.5},
	InstChamberEnsemble:   {Name: "Chamber Ensemble", Cost: 30, Complexity: 2},
	InstSmallOrchestra:    {Name: "Small Orchestra", Cost: 80, Complexity: 3},
	InstFullOrchestra:     {Name: "Full Orchestra", Cost: 150, Complexity: 4},
	InstChoirAndOrchestra: {Name: "Choir and Orchestra", Cost: 200, Complexity: 5},
}

// AllInstrumentations lists forces in menu order.
var AllInstrumentations = []Instrumentation{
	InstSoloPiano, InstVoiceAndPiano, InstChamberEnsemble,
	InstSmallOrchestra, InstFullOrchestra, InstChoirAndOrchestra,
}

// Venue is a premiere location.
type Venue struct {
	Type               VenueType
	Name               string
	Capacity           int
	Prestige           int
	Cost               int
	RequiredReputation int
	BestFor            []Form
}

// Venues is the venue table.
var Venues = map[VenueType]Venue{
	VenueSalon: {
		Type: VenueSalon, Name: "Private Salon",
		Capacity: 30, Prestige: 1, Cost: 10, RequiredReputation: 0,
		BestFor: []Form{FormPianoSonata, FormLied, FormStringQuartet},
	},
	VenueChurch: {
		Type: VenueChurch, Name: "St. Michael's Church",
		Capacity: 200, Prestige: 2, Cost: 25, RequiredReputation: 15,
		BestFor: []Form{FormMass},
	},
	VenueSmallHall: {
		Type: VenueSmallHall, Name: "Municipal Concert Hall",
		Capacity: 400, Prestige: 3, Cost: 75, RequiredReputation: 30,
		BestFor: []Form{FormStringQuartet, FormConcerto, FormPianoSonata},
	},
	VenueConcertHall: {
		Type: VenueConcertHall, Name: "Grand Concert Hall",
		Capacity: 1200, Prestige: 4, Cost: 200, RequiredReputation: 60,
		BestFor: []Form{FormSymphony, FormConcerto},
	},
	VenueOperaHouse: {
		Type: VenueOperaHouse, Name: "Royal Opera House",
		Capacity: 2000, Prestige: 5, Cost: 500, RequiredReputation: 100,
		BestFor: []Form{FormOpera, FormSymphony},
	},
}

// AllVenues lists venues from humblest to grandest.
var AllVenues = []VenueType{
	VenueSalon, VenueChurch, VenueSmallHall, VenueConcertHall, VenueOperaHouse,
}

// MusicianRate holds hire cost and the quality multiplier of a tier.
type MusicianRate struct {
	Cost       int
	Multiplier float64
}

// MusicianRates is the four-tier musician table.
var MusicianRates = map[MusicianTier]MusicianRate{
	MusiciansAmateur:      {Cost: 20, Multiplier: 0.7},
	MusiciansCompetent:    {Cost: 50, Multiplier: 1.0},
	MusiciansProfessional: {Cost: 120, Multiplier: 1.2},
	MusiciansVirtuoso:     {Cost: 300, Multiplier: 1.5},
}

// AllMusicianTiers lists tiers cheapest first.
var AllMusicianTiers = []MusicianTier{
	MusiciansAmateur, MusiciansCompetent, MusiciansProfessional, MusiciansVirtuoso,
}

// trendEffect maps a taste trend to the forms and styles it favors.
type trendEffect struct {
	forms  []Form
	styles []Style
}

var trendEffects = map[TasteTrend]trendEffect{
	TrendVirtuosity: {
		forms:  []Form{FormConcerto, FormPianoSonata},
		styles: []Style{StyleLateRomantic},
	},
	TrendLyricism: {
		forms:  []Form{FormLied, FormStringQuartet},
		styles: []Style{StyleEarlyRomantic},
	},
	TrendSacred: {
		forms:  []Form{FormMass},
		styles: []Style{StyleClassical},
	},
	TrendSecular: {
		forms:  []Form{FormOpera, FormSymphony, FormConcerto},
		styles: []Style{StyleLateRomantic, StyleEarlyRomantic},
	},
	TrendNationalist: {
		forms:  []Form{FormSymphony, FormOpera},
		styles: []Style{StyleLateRomantic},
	},
	TrendCosmopolitan: {
		forms:  []Form{FormStringQuartet, FormPianoSonata, FormConcerto},
		styles: []Style{StyleClassical, StyleEarlyRomantic},
	},
}

// allTrends is every taste trend; trendOpposites pairs each with the
// trend that can never be active alongside it.
var allTrends = []TasteTrend{
	TrendVirtuosity, TrendLyricism, TrendSacred,
	TrendSecular, TrendNationalist, TrendCosmopolitan,
}

var trendOpposites = map[TasteTrend]TasteTrend{
	TrendVirtuosity:   TrendLyricism,
	TrendLyricism:     TrendVirtuosity,
	TrendSacred:       TrendSecular,
	TrendSecular:      TrendSacred,
	TrendNationalist:  TrendCosmopolitan,
	TrendCosmopolitan: TrendNationalist,
}

// TrendName returns a display name for a trend.
func TrendName(t TasteTrend) string {
	switch t {
	case TrendVirtuosity:
		return "Virtuosity"
	case TrendLyricism:
		return "Lyricism"
	case TrendSacred:
		return "Sacred"
	case TrendSecular:
		return "Secular"
	case TrendNationalist:
		return "Nationalist"
	case TrendCosmopolitan:
		return "Cosmopolitan"
	default:
		return string(t)
	}
}
