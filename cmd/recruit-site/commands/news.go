package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/itfweb/recruit-site/internal/core/news"
	"github.com/itfweb/recruit-site/internal/infra/newsfeed"
)

// NewsListAction はフィードをエンジンと同じ経路で取得して一覧表示するアクション
func NewsListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	feedURL := cmd.String("feed-url")
	if feedURL == "" {
		feedURL = appCtx.Config.News.FeedURL
	}

	engine := news.NewEngine(newsfeed.NewClient(feedURL), news.WithEngineLogger(appCtx.Logger))
	if err := engine.Load(ctx); err != nil {
		return err
	}

	criteria := news.DefaultFilterCriteria()
	if category := cmd.String("category"); category != "" {
		criteria.Category = category
	}
	if cmd.Bool("asc") {
		criteria.Order = news.DateOrderAsc
	}

	items := engine.Derive(criteria)
	if len(items) == 0 {
		fmt.Println("ニュースデータがありません。")
		return nil
	}

	for _, item := range items {
		fmt.Printf("[%s] %s | %s | %s\n", item.ID, item.Date, item.Category, item.Title)
	}

	return nil
}
