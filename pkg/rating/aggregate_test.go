package rating_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/BrewLog/pkg/rating"
)

func TestSummarize_EmptyHasNoAverage(t *testing.T) {
	summary := rating.Summarize(nil)

	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.NoteCount)

	summary = rating.Summarize([]rating.Ratings{})

	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.NoteCount)
}

func TestSummarize_AveragesEachDimension(t *testing.T) {
	notes := []rating.Ratings{
		{OverallRating: pointy.Int(4), Acidity: pointy.Int(5), Bitterness: pointy.Int(2), Sweetness: pointy.Int(3), Aftertaste: pointy.Int(4)},
		{OverallRating: pointy.Int(3), Acidity: pointy.Int(4), Bitterness: pointy.Int(2), Sweetness: pointy.Int(4), Aftertaste: pointy.Int(4)},
		{OverallRating: pointy.Int(5), Acidity: pointy.Int(4), Bitterness: pointy.Int(3), Sweetness: pointy.Int(4), Aftertaste: pointy.Int(5)},
	}

	want := rating.Summary{
		NoteCount: 3,
		Average: &rating.Averages{
			OverallRating: pointy.Float64(4),
			Acidity:       pointy.Float64(4.3),
			Bitterness:    pointy.Float64(2.3),
			Sweetness:     pointy.Float64(3.7),
			Aftertaste:    pointy.Float64(4.3),
		},
	}

	if diff := cmp.Diff(want, rating.Summarize(notes)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_NullsAreExcludedNotZero(t *testing.T) {
	notes := []rating.Ratings{
		{OverallRating: pointy.Int(4), Acidity: nil},
		{OverallRating: nil, Acidity: pointy.Int(2)},
		{},
	}

	summary := rating.Summarize(notes)

	assert.Equal(t, 3, summary.NoteCount)
	assert.NotNil(t, summary.Average)
	assert.InDelta(t, 4.0, *summary.Average.OverallRating, 0.001)
	assert.InDelta(t, 2.0, *summary.Average.Acidity, 0.001)
	assert.Nil(t, summary.Average.Bitterness)
	assert.Nil(t, summary.Average.Sweetness)
	assert.Nil(t, summary.Average.Aftertaste)
}

func TestSummarize_AllNullNotesStillCount(t *testing.T) {
	summary := rating.Summarize([]rating.Ratings{{}, {}})

	assert.Equal(t, 2, summary.NoteCount)
	assert.NotNil(t, summary.Average)
	assert.Equal(t, rating.Averages{}, *summary.Average)
}

func TestRoundTenth_HalvesAwayFromZero(t *testing.T) {
	cases := map[float64]float64{
		2.25:      2.3,
		3.5:       3.5,
		1.0 / 3.0: 0.3,
		5.0 / 3.0: 1.7,
		4.75:      4.8,
		2.04:      2.0,
	}

	for in, want := range cases {
		assert.InDelta(t, want, rating.RoundTenth(in), 1e-9, "RoundTenth(%v)", in)
	}
}
