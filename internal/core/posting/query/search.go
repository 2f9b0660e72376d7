package query

import (
	"github.com/itfweb/recruit-site/internal/core/posting"
)

// 求人検索の対象テーブルとカラム定義。
// post_type の述語は常に先頭に固定され、利用者入力では制御できない。
const (
	postsTable  = "posts"
	postTypeJob = "job"
)

var postingColumns = []string{
	"id",
	"title",
	"summary",
	"company_name",
	"salary",
	"job_type",
	"job_location",
	"japanese_level",
	"job_category",
	"minimum_leave_per_year",
	"image",
	"date",
}

// keywordColumns はフリーワード検索の対象カラム
var keywordColumns = []string{
	"title",
	"summary",
	"company_name",
	"job_location",
	"job_category",
}

// BuildPostingSearch は検索条件から求人検索のSELECT文と束縛パラメータを構築する。
// 並び順は掲載日の降順、同日の場合は行の挿入順で安定させる。
func BuildPostingSearch(c posting.SearchCriteria) (string, []any) {
	b := NewBuilder(postsTable, postingColumns, "post_type", postTypeJob)
	b.AndContainsAny(keywordColumns, c.Keyword)
	b.AndEqual("job_location", c.Location)
	b.AndEqual("job_type", c.JobType)
	b.AndEqual("japanese_level", c.JapaneseLevel)
	b.AndEqual("job_category", c.JobCategory)
	b.OrderBy("date DESC, id ASC")
	return b.Build()
}

// BuildDistinctValues は指定カラムの重複なし値一覧を取得するSELECT文を構築する。
// 絞り込みコントロールの選択肢算出用で、現在の検索条件には依存しない。
func BuildDistinctValues(column string) (string, []any) {
	b := NewBuilder(postsTable, []string{"DISTINCT " + column}, "post_type", postTypeJob)
	b.OrderBy(column + " ASC")
	return b.Build()
}
