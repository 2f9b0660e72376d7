package posting

import "time"

// JobPosting は求人投稿1件を表す
type JobPosting struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Summary             string    `json:"summary"`
	CompanyName         string    `json:"companyName"`
	Salary              string    `json:"salary"`
	JobType             string    `json:"jobType"`
	JobLocation         string    `json:"jobLocation"`
	JapaneseLevel       string    `json:"japaneseLevel"`
	JobCategory         string    `json:"jobCategory"`
	MinimumLeavePerYear int       `json:"minimumLeavePerYear"`
	Image               *string   `json:"image,omitempty"`
	Date                time.Time `json:"date"`
}

// SearchCriteria は求人検索の任意フィルタを表す。
// 空文字列のフィールドは「絞り込みなし」を意味する。
type SearchCriteria struct {
	Keyword       string // タイトル・概要・会社名・勤務地・カテゴリの部分一致
	Location      string
	JobType       string
	JapaneseLevel string
	JobCategory   string
}

// HasKeyword はフリーワード検索が指定されているかを返す
func (c SearchCriteria) HasKeyword() bool {
	return c.Keyword != ""
}

// IsEmpty はいずれの絞り込みも指定されていないかを返す
func (c SearchCriteria) IsEmpty() bool {
	return c == SearchCriteria{}
}

// FilterOptions は絞り込みコントロールに表示する選択肢の集合を表す。
// いずれも現在の絞り込み条件に依存せず、求人全件から算出される。
type FilterOptions struct {
	Locations      []string
	JobTypes       []string
	JapaneseLevels []string
	JobCategories  []string
}

// SearchResult は検索結果と絞り込み選択肢をまとめて表す
type SearchResult struct {
	Postings []*JobPosting
	Options  *FilterOptions
}
