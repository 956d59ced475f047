// Package rating summarises the per-taster notes attached to a tasting.
package rating

import "math"

// Ratings is one taster's scores. Nil means the taster left the dimension blank.
type Ratings struct {
	OverallRating *int
	Acidity       *int
	Bitterness    *int
	Sweetness     *int
	Aftertaste    *int
}

// Averages holds the per-dimension means, nil where no taster scored it.
type Averages struct {
	OverallRating *float64
	Acidity       *float64
	Bitterness    *float64
	Sweetness     *float64
	Aftertaste    *float64
}

type Summary struct {
	// Average is nil when there are no notes at all.
	Average   *Averages
	NoteCount int
}

// Summarize averages every dimension independently, skipping blanks, and
// rounds each mean to one decimal place, halves away from zero.
func Summarize(notes []Ratings) Summary {
	summary := Summary{NoteCount: len(notes)}
	if len(notes) == 0 {
		return summary
	}

	summary.Average = &Averages{
		OverallRating: mean(notes, func(r Ratings) *int { return r.OverallRating }),
		Acidity:       mean(notes, func(r Ratings) *int { return r.Acidity }),
		Bitterness:    mean(notes, func(r Ratings) *int { return r.Bitterness }),
		Sweetness:     mean(notes, func(r Ratings) *int { return r.Sweetness }),
		Aftertaste:    mean(notes, func(r Ratings) *int { return r.Aftertaste }),
	}

	return summary
}

func mean(notes []Ratings, dimension func(Ratings) *int) *float64 {
	var sum, count int

	for _, note := range notes {
		if value := dimension(note); value != nil {
			sum += *value
			count++
		}
	}

	if count == 0 {
		return nil
	}

	rounded := RoundTenth(float64(sum) / float64(count))

	return &rounded
}

func RoundTenth(value float64) float64 {
	return math.Round(value*10) / 10 //nolint:mnd // one decimal place
}
