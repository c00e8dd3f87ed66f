package game

import "strings"

// Review templates per quality band. {form} and {style} are replaced
// with the lowercase display names of the work's form and style.
var reviewBands = []struct {
	below int // exclusive upper bound; the last band catches the rest
	pool  []string
}{
	{20, []string{
		`"A bewildering cacophony that sent half the audience fleeing before the finale."`,
		`"One struggles to find any redeeming quality in this unfortunate attempt at {form}."`,
		`"The less said about last evening's performance, the better for everyone concerned."`,
	}},
	{40, []string{
		`"A work of modest ambitions, achieving even less than it attempts."`,
		`"While not entirely without merit, one cannot recommend this {form} to persons of refined taste."`,
		`"The {style} idiom deserves better treatment than this."`,
	}},
	{55, []string{
		`"A competent if uninspired work that will neither offend nor particularly delight."`,
		`"Perfectly adequate for background music at a modest gathering."`,
		`"The composer shows promise, though this {form} falls short of greatness."`,
	}},
	{70, []string{
		`"A thoroughly enjoyable {form} that rewards careful listening."`,
		`"The composer demonstrates genuine command of the {style} style."`,
		`"An evening well spent - we eagerly await the next offering from this talented pen."`,
	}},
	{85, []string{
		`"A masterful {form} that had the audience in raptures."`,
		`"Here is a composer who truly understands the power of music to move the soul."`,
		`"Bravo! A work of genuine distinction that will surely enter the repertoire."`,
	}},
	{101, []string{
		`"We have witnessed history. This {form} will be remembered for generations."`,
		`"Sublime. There are no other words adequate to describe this triumph."`,
		`"The very heavens seemed to open. A work of transcendent genius."`,
	}},
}

// review picks a press notice for the given quality.
func (e *Engine) review(quality int, work WorkInProgress) string {
	pool := reviewBands[len(reviewBands)-1].pool
	for _, band := range reviewBands {
		if quality < band.below {
			pool = band.pool
			break
		}
	}
	template := pool[e.rng.Intn(len(pool))]
	replacer := strings.NewReplacer(
		"{form}", strings.ToLower(Forms[work.Form].Name),
		"{style}", strings.ToLower(Styles[work.Style].Name),
	)
	return replacer.Replace(template)
}
