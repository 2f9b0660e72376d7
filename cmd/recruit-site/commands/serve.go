package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/itfweb/recruit-site/internal/core/posting"
	"github.com/itfweb/recruit-site/internal/infra/newsfeed"
	"github.com/itfweb/recruit-site/internal/infra/postgres"
	"github.com/itfweb/recruit-site/internal/interface/web"
	"github.com/itfweb/recruit-site/internal/interface/web/render"
)

// ServeAction はHTTPサーバを起動するコマンドのアクション
func ServeAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if port := cmd.Int("port"); port != 0 {
		appCtx.Config.HTTP.Port = port
	}

	postingRepo := postgres.NewPostingRepository(appCtx.Database.Pool)
	postingService := posting.NewService(postingRepo, posting.WithLogger(appCtx.Logger))

	newsRepo := postgres.NewNewsRepository(appCtx.Database.Pool)
	feedClient := newsfeed.NewClient(appCtx.Config.News.FeedURL)

	renderer := render.NewRenderer()

	router := web.NewRouter(web.RouterDeps{
		Posting:     web.NewPostingHandler(postingService, renderer, appCtx.Logger),
		NewsPage:    web.NewNewsPageHandler(feedClient, renderer, appCtx.Logger),
		IndexWidget: web.NewIndexWidgetHandler(feedClient, renderer, appCtx.Config.News.LatestCount, appCtx.Logger),
		NewsFeed:    web.NewNewsFeedHandler(newsRepo, appCtx.Logger),
		Logger:      appCtx.Logger,
	})

	server := web.NewServer(appCtx.Config.HTTP, router, appCtx.Logger)
	return server.Run(ctx)
}
