package cmd

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/BrewLog/pkg/model"
)

type StatsCmdTestSuite struct {
	suite.Suite
}

func TestStatsCmdTestSuite(t *testing.T) {
	suite.Run(t, new(StatsCmdTestSuite))
}

func (suite *StatsCmdTestSuite) TestRenderStats() {
	var out bytes.Buffer

	renderStats(&out, &model.JournalStats{
		BeanCount:            12,
		InStockCount:         3,
		FinishedCount:        9,
		TotalSpent:           decimal.NewNullDecimal(decimal.RequireFromString("21600.40")),
		AverageOverallRating: pointy.Float64(4.25),
	}, []model.BeanRanking{{CoffeeBeanID: 1, Name: "ケニア", TastingCount: 1200, AverageRating: 4.66}})

	rendered := out.String()
	suite.Contains(rendered, "¥21,600")
	suite.Contains(rendered, "4.3")
	suite.Contains(rendered, "ケニア")
	suite.Contains(rendered, "1,200")
	suite.Contains(rendered, "1st")
	suite.Contains(rendered, "4.7")
}

func (suite *StatsCmdTestSuite) TestRenderStats_EmptyJournal() {
	var out bytes.Buffer

	renderStats(&out, &model.JournalStats{}, nil)

	suite.Contains(out.String(), "¥0")
	suite.Contains(out.String(), "-")
	suite.NotContains(out.String(), "1st")
}
