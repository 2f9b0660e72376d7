// Package render は求人・お知らせページのHTML断片を組み立てる。
// テンプレートへ渡すビューモデルはここで構築し、描画は常にコンテナ全体を
// 置き換える前提の断片を返す。
package render

import (
	"fmt"
	"strings"

	"github.com/itfweb/recruit-site/internal/core/news"
	"github.com/itfweb/recruit-site/internal/core/posting"
)

// 空状態・不在状態の表示文言
const (
	MessageNoPostings   = "求人が見つかりませんでした。"
	MessageNoNews       = "ニュースデータがありません。"
	MessageNewsNotFound = "ニュースが見つかりませんでした。"
)

// 既定画像
const (
	defaultJobImage  = "images/default_job_image.jpg"
	defaultNewsImage = "images/default-news.jpg"
)

// Option は選択式コントロールの1候補を表す
type Option struct {
	Value    string
	Selected bool
}

// FilterControls は求人ページの絞り込みコントロールを表す
type FilterControls struct {
	Locations      []Option
	JobTypes       []Option
	JapaneseLevels []Option
	JobCategories  []Option
}

// PostingCard は求人1件分の表示内容を表す
type PostingCard struct {
	Date          string
	Title         string
	DetailURL     string
	ImageURL      string
	ImageAlt      string
	Summary       string
	CompanyName   string
	Salary        string
	JobType       string
	JobLocation   string
	JapaneseLevel string
	MinimumLeave  int

	// Last が偽のカードの後ろにのみ区切り線を描画する
	Last bool
}

// PostingPageView は求人ページ全体のビューモデル
type PostingPageView struct {
	Heading  string
	Keyword  string
	Cards    []PostingCard
	Controls FilterControls
	Message  string // Cards が空のときの表示文言
}

// NewPostingPageView は検索条件と検索結果からビューモデルを構築する
func NewPostingPageView(criteria posting.SearchCriteria, result *posting.SearchResult) PostingPageView {
	heading := "最近追加された求人"
	if criteria.HasKeyword() {
		heading = "マッチング求人"
	}

	view := PostingPageView{
		Heading: heading,
		Keyword: criteria.Keyword,
		Controls: FilterControls{
			Locations:      markSelected(result.Options.Locations, criteria.Location),
			JobTypes:       markSelected(result.Options.JobTypes, criteria.JobType),
			JapaneseLevels: markSelected(result.Options.JapaneseLevels, criteria.JapaneseLevel),
			JobCategories:  markSelected(result.Options.JobCategories, criteria.JobCategory),
		},
	}

	for i, p := range result.Postings {
		view.Cards = append(view.Cards, PostingCard{
			Date:          p.Date.Format("2006-01-02"),
			Title:         p.Title,
			DetailURL:     fmt.Sprintf("/jobs/%d", p.ID),
			ImageURL:      postingImageURL(p.Image),
			ImageAlt:      p.Title,
			Summary:       p.Summary,
			CompanyName:   p.CompanyName,
			Salary:        p.Salary,
			JobType:       p.JobType,
			JobLocation:   p.JobLocation,
			JapaneseLevel: p.JapaneseLevel,
			MinimumLeave:  p.MinimumLeavePerYear,
			Last:          i == len(result.Postings)-1,
		})
	}

	if len(view.Cards) == 0 {
		view.Message = MessageNoPostings
	}

	return view
}

// postingImageURL はDB上の画像パスをブラウザから参照できるパスに変換する。
// 画像が無い場合は既定画像を返す。
func postingImageURL(image *string) string {
	if image == nil || *image == "" {
		return defaultJobImage
	}
	return strings.Replace(*image, "../uploads/", "uploads/", 1)
}

// markSelected は候補一覧から選択式コントロールの候補を構築し、
// URLで指定された現在値に印を付ける
func markSelected(values []string, current string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{
			Value:    v,
			Selected: current != "" && v == current,
		})
	}
	return options
}

// NewsCard はお知らせ1件分の表示内容を表す
type NewsCard struct {
	ID           string
	Title        string
	Category     string
	Date         string
	PostedBy     string
	ImageURL     string
	ShortSummary string
	DetailURL    string

	// ImageHeight はレイアウト調整後の画像高さ(px)。0は未調整
	ImageHeight int
}

// NewNewsCard はお知らせ項目からカードを構築する
func NewNewsCard(item news.Item) NewsCard {
	return NewsCard{
		ID:           item.ID,
		Title:        item.Title,
		Category:     item.Category,
		Date:         item.Date,
		PostedBy:     item.PostedBy,
		ImageURL:     newsImageURL(item.Image),
		ShortSummary: news.ShortSummary(item.Summary),
		DetailURL:    "/news?id=" + item.ID,
	}
}

func newsImageURL(image string) string {
	if image == "" {
		return defaultNewsImage
	}
	return image
}

// NewsListView はお知らせ一覧ページのビューモデル
type NewsListView struct {
	// ShowFilterBar は一覧表示でのみ真。詳細表示では絞り込みバーと
	// 導入文を隠す
	ShowFilterBar bool
	Categories    []Option
	OrderDesc     bool
	Cards         []NewsCard
	Message       string // Cards が空のときの表示文言
	ErrorMessage  string // 取得失敗時にのみ設定される
}

// NewNewsListView は派生ビューと表示条件から一覧ビューモデルを構築する
func NewNewsListView(items []news.Item, categories []string, criteria news.FilterCriteria) NewsListView {
	view := NewsListView{
		ShowFilterBar: true,
		Categories:    markSelected(categories, criteria.Category),
		OrderDesc:     criteria.Order != news.DateOrderAsc,
	}
	for _, item := range items {
		view.Cards = append(view.Cards, NewNewsCard(item))
	}
	if len(view.Cards) == 0 {
		view.Message = MessageNoNews
	}
	return view
}

// NewsDetailView はお知らせ詳細ページのビューモデル
type NewsDetailView struct {
	Found    bool
	Title    string
	Category string
	Date     string
	PostedBy string
	ImageURL string
	Content  string
	Message  string // Found が偽のときの表示文言
}

// NewNewsDetailView はお知らせ項目から詳細ビューモデルを構築する
func NewNewsDetailView(item news.Item) NewsDetailView {
	return NewsDetailView{
		Found:    true,
		Title:    item.Title,
		Category: item.Category,
		Date:     item.Date,
		PostedBy: item.PostedBy,
		ImageURL: newsImageURL(item.Image),
		Content:  item.Content,
	}
}

// NewsNotFoundView は詳細ページの不在状態ビューモデルを返す
func NewsNotFoundView() NewsDetailView {
	return NewsDetailView{
		Found:   false,
		Message: MessageNewsNotFound,
	}
}

// IndexWidgetItem はインデックスウィジェットの1カードを表す
type IndexWidgetItem struct {
	DetailURL    string
	Title        string
	Category     string
	DateAttr     string // time要素のdatetime属性（YYYY-MM-DD）
	DateDisplay  string // 表示用（YYYY/MM/DD）
	ShortSummary string
}

// IndexWidgetView はインデックスウィジェットのビューモデル
type IndexWidgetView struct {
	Items   []IndexWidgetItem
	Message string // Items が空のときの表示文言
}

// NewIndexWidgetView は最新のお知らせからウィジェットのビューモデルを構築する
func NewIndexWidgetView(items []news.Item) IndexWidgetView {
	view := IndexWidgetView{}
	for _, item := range items {
		view.Items = append(view.Items, IndexWidgetItem{
			DetailURL:    "/news?id=" + item.ID,
			Title:        item.Title,
			Category:     item.Category,
			DateAttr:     item.Date,
			DateDisplay:  strings.ReplaceAll(item.Date, "-", "/"),
			ShortSummary: news.ShortSummary(item.Summary),
		})
	}
	if len(view.Items) == 0 {
		view.Message = MessageNoNews
	}
	return view
}
