package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/itfweb/recruit-site/cmd/recruit-site/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "recruit-site",
		Usage: "求人掲載とお知らせ配信のWebサイト",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "HTTPサーバを起動",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "環境変数ファイルパス",
						Value: ".env",
					},
					&cli.IntFlag{
						Name:  "port",
						Usage: "HTTPポート（省略時は環境変数またはデフォルトの8080）",
					},
				},
				Action: commands.ServeAction,
			},
			{
				Name:  "posting",
				Usage: "求人管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "search",
						Usage: "求人を検索して一覧表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "q",
								Usage: "フリーワード（タイトル・概要・会社名・勤務地・カテゴリ）",
							},
							&cli.StringFlag{
								Name:  "location",
								Usage: "勤務地で絞り込み",
							},
							&cli.StringFlag{
								Name:  "job-type",
								Usage: "職種で絞り込み",
							},
							&cli.StringFlag{
								Name:  "japanese-level",
								Usage: "日本語レベルで絞り込み",
							},
							&cli.StringFlag{
								Name:  "job-category",
								Usage: "カテゴリで絞り込み",
							},
						},
						Action: commands.PostingSearchAction,
					},
				},
			},
			{
				Name:  "news",
				Usage: "お知らせ管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "フィードのお知らせ一覧を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "feed-url",
								Usage: "フィードURL（省略時は設定値）",
							},
							&cli.StringFlag{
								Name:  "category",
								Usage: "カテゴリで絞り込み",
							},
							&cli.BoolFlag{
								Name:  "asc",
								Usage: "古い順で表示",
							},
						},
						Action: commands.NewsListAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
