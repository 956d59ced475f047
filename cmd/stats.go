package cmd

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"

	"droscher.com/BrewLog/configs"
	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/rating"
	"droscher.com/BrewLog/pkg/repository"
)

type StatsCmd struct {
	ConfigFile string `default:".BrewLog.toml" help:"Path to config file" short:"c"`
	Top        int    `default:"5" help:"Number of top rated beans"`
}

func (s *StatsCmd) Run(ctx *Context) error {
	logger := cliLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	stats, err := repo.GetJournalStats(context.Background())
	if err != nil {
		return err
	}

	top, err := repo.GetTopBeans(context.Background(), s.Top)
	if err != nil {
		return err
	}

	renderStats(os.Stdout, stats, top)

	return nil
}

func renderStats(w io.Writer, stats *model.JournalStats, top []model.BeanRanking) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleRounded)
	summary.SetTitle("BrewLog")
	summary.AppendRows([]table.Row{
		{"コーヒー豆", humanize.Comma(stats.BeanCount)},
		{"在庫中", humanize.Comma(stats.InStockCount)},
		{"飲み切り", humanize.Comma(stats.FinishedCount)},
		{"購入金額", "¥" + humanize.Comma(stats.TotalSpent.Decimal.Round(0).IntPart())},
		{"ショップ", humanize.Comma(stats.ShopCount)},
		{"テイスティング", humanize.Comma(stats.TastingCount)},
		{"テイスティングノート", humanize.Comma(stats.TastingNoteCount)},
		{"平均評価", formatRating(stats.AverageOverallRating)},
	})
	summary.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	summary.Render()

	if len(top) == 0 {
		return
	}

	ranking := table.NewWriter()
	ranking.SetOutputMirror(w)
	ranking.SetStyle(table.StyleRounded)
	ranking.AppendHeader(table.Row{"#", "コーヒー豆", "テイスティング", "平均評価"})

	for i, bean := range top {
		average := rating.RoundTenth(bean.AverageRating)
		ranking.AppendRow(table.Row{
			humanize.Ordinal(i + 1),
			bean.Name,
			humanize.Comma(bean.TastingCount),
			formatRating(&average),
		})
	}

	ranking.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	ranking.Render()
}

func formatRating(value *float64) string {
	if value == nil {
		return "-"
	}

	return strconv.FormatFloat(rating.RoundTenth(*value), 'f', 1, 64)
}
