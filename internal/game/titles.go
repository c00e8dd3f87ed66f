package game

import "fmt"

var titleKeys = []string{
	"C major", "G major", "D major", "A major", "E major", "B major",
	"F major", "B-flat major", "E-flat major", "A-flat major",
	"C minor", "G minor", "D minor", "A minor", "E minor", "F minor",
	"B-flat minor", "E-flat minor", "F-sharp minor", "C-sharp minor",
}

var titlePrefixes = map[Form][]string{
	FormPianoSonata:   {"Sonata", "Grand Sonata", "Sonatina"},
	FormStringQuartet: {"Quartet", "String Quartet"},
	FormSymphony:      {"Symphony", "Grand Symphony", "Sinfonia"},
	FormMass:          {"Mass", "Missa"},
	FormConcerto:      {"Concerto", "Grand Concerto"},
}

// Operas and Lieder carry curated titles instead of "Prefix in Key, Op. N".
var operaTitles = []string{
	"Die Zauberflöte", "Leonore", "Der Freischütz", "Euryanthe",
	"La Vestale", "Medea", "Armide", "Iphigénie",
}

var liedTitles = []string{
	"Wanderer", "Sehnsucht", "An die Musik", "Erlkönig",
	"Gretchen am Spinnrade", "Die Forelle", "Nachtlied",
}

// WorkTitle generates a period-flavored title for the composer's
// workNumber-th work (0-based). Opus numbers stretch ahead of the actual
// count, as real catalogues did.
func (e *Engine) WorkTitle(form Form, workNumber int) string {
	opus := 1 + (workNumber*3)/2

	switch form {
	case FormOpera:
		return operaTitles[e.rng.Intn(len(operaTitles))]
	case FormLied:
		return fmt.Sprintf("%q, Op. %d", liedTitles[e.rng.Intn(len(liedTitles))], opus)
	}

	prefixes := titlePrefixes[form]
	prefix := prefixes[e.rng.Intn(len(prefixes))]
	key := titleKeys[e.rng.Intn(len(titleKeys))]
	return fmt.Sprintf("%s in %s, Op. %d", prefix, key, opus)
}
