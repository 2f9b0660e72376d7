package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/itfweb/recruit-site/internal/core/posting"
	"github.com/itfweb/recruit-site/internal/infra/postgres"
)

// PostingSearchAction は求人検索をCLIから実行するアクション
func PostingSearchAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd.String("env"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	repo := postgres.NewPostingRepository(appCtx.Database.Pool)
	service := posting.NewService(repo, posting.WithLogger(appCtx.Logger))

	criteria := posting.SearchCriteria{
		Keyword:       cmd.String("q"),
		Location:      cmd.String("location"),
		JobType:       cmd.String("job-type"),
		JapaneseLevel: cmd.String("japanese-level"),
		JobCategory:   cmd.String("job-category"),
	}

	result, err := service.Search(ctx, criteria)
	if err != nil {
		return err
	}

	if len(result.Postings) == 0 {
		fmt.Println("求人が見つかりませんでした。")
		return nil
	}

	for _, p := range result.Postings {
		fmt.Printf("[%d] %s | %s | %s | %s | %s\n",
			p.ID,
			p.Date.Format("2006-01-02"),
			p.Title,
			p.CompanyName,
			p.JobLocation,
			p.JobCategory,
		)
	}
	fmt.Printf("%d件\n", len(result.Postings))

	return nil
}
