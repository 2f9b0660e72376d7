package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samber/mo"

	"github.com/itfweb/recruit-site/internal/core/news"
	"github.com/itfweb/recruit-site/internal/interface/web/render"
)

// NewsPageHandler はお知らせの一覧・詳細ページのHTTPハンドラ。
// リクエストごとにエンジンを組み立て、コレクションを一度だけ取得してから
// URLの文脈（idパラメータの有無）でビューを選択する。
type NewsPageHandler struct {
	fetcher  news.Fetcher
	renderer *render.Renderer
	measure  render.Measurer
	logger   *slog.Logger
}

// NewNewsPageHandler は新しいNewsPageHandlerを作成します
func NewNewsPageHandler(fetcher news.Fetcher, renderer *render.Renderer, logger *slog.Logger) *NewsPageHandler {
	return &NewsPageHandler{
		fetcher:  fetcher,
		renderer: renderer,
		measure:  render.EstimateContentHeight,
		logger:   logger,
	}
}

// ServeHTTP はお知らせページを描画する
func (h *NewsPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	engine := news.NewEngine(h.fetcher, news.WithEngineLogger(h.logger))
	// 取得失敗は空状態の描画に切り替える。この先のビュー構築は
	// 空コレクションを通常の状態として扱う
	loadErr := engine.Load(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if id, ok := detailID(r); ok {
		h.renderDetail(w, engine, id)
		return
	}

	h.renderList(w, r, engine, loadErr)
}

// detailID はURLから詳細ビューの対象識別子を取り出す
func detailID(r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	return id, id != ""
}

// renderDetail は詳細ビューを描画する。
// 識別子が見つからない場合は不在状態を描画し、エラーにはしない。
func (h *NewsPageHandler) renderDetail(w http.ResponseWriter, engine *news.Engine, id string) {
	detail := render.NewsNotFoundView()
	if item, ok := lookupDetail(engine, id).Get(); ok {
		detail = render.NewNewsDetailView(item)
	}

	if err := h.renderer.NewsDetail(w, detail); err != nil {
		h.logger.Error("お知らせ詳細の描画に失敗", slog.String("error", err.Error()))
	}
}

// lookupDetail は安定識別子で検索し、見つからなければ旧形式の
// 配列位置として解決を試みる
func lookupDetail(engine *news.Engine, id string) mo.Option[news.Item] {
	if item := engine.Find(id); item.IsPresent() {
		return item
	}
	if pos, err := strconv.Atoi(id); err == nil {
		return engine.FindByPosition(pos)
	}
	return mo.None[news.Item]()
}

// renderList は一覧ビューを描画する
func (h *NewsPageHandler) renderList(w http.ResponseWriter, r *http.Request, engine *news.Engine, loadErr error) {
	criteria := newsCriteriaFromQuery(r)
	items := engine.Derive(criteria)

	view := render.NewNewsListView(items, categoriesOf(engine.Items()), criteria)
	if loadErr != nil {
		view.ErrorMessage = "ニュースデータの取得に失敗しました。"
	}
	render.AdjustCardLayout(view.Cards, h.measure)

	if err := h.renderer.NewsList(w, view); err != nil {
		h.logger.Error("お知らせ一覧の描画に失敗", slog.String("error", err.Error()))
	}
}

// newsCriteriaFromQuery はURLクエリパラメータから表示条件を組み立てる。
// 欠落したパラメータには既定値（全カテゴリ・新しい順）を適用する
func newsCriteriaFromQuery(r *http.Request) news.FilterCriteria {
	criteria := news.DefaultFilterCriteria()
	q := r.URL.Query()
	if category := q.Get("category"); category != "" {
		criteria.Category = category
	}
	if order := q.Get("dateOrder"); order == string(news.DateOrderAsc) {
		criteria.Order = news.DateOrderAsc
	}
	return criteria
}

// categoriesOf は基底コレクションに出現するカテゴリを出現順で返す
func categoriesOf(items []news.Item) []string {
	seen := make(map[string]bool, len(items))
	categories := make([]string, 0)
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// IndexWidgetHandler はインデックスウィジェット断片のHTTPハンドラ
type IndexWidgetHandler struct {
	fetcher     news.Fetcher
	renderer    *render.Renderer
	latestCount int
	logger      *slog.Logger
}

// NewIndexWidgetHandler は新しいIndexWidgetHandlerを作成します
func NewIndexWidgetHandler(fetcher news.Fetcher, renderer *render.Renderer, latestCount int, logger *slog.Logger) *IndexWidgetHandler {
	return &IndexWidgetHandler{
		fetcher:     fetcher,
		renderer:    renderer,
		latestCount: latestCount,
		logger:      logger,
	}
}

// ServeHTTP は最新のお知らせをコンパクトなリンクカードとして描画する
func (h *IndexWidgetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	engine := news.NewEngine(h.fetcher, news.WithEngineLogger(h.logger))
	if err := engine.Load(r.Context()); err != nil {
		// 取得失敗時も空状態のウィジェットを返す
		h.logger.Warn("ウィジェット用お知らせの取得に失敗", slog.String("error", err.Error()))
	}

	view := render.NewIndexWidgetView(engine.Latest(h.latestCount))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.IndexWidget(w, view); err != nil {
		h.logger.Error("ウィジェットの描画に失敗", slog.String("error", err.Error()))
	}
}

// NewsLister はフィードAPIが必要とする読み取りインターフェース
type NewsLister interface {
	ListAll(ctx context.Context) ([]news.Item, error)
}

// NewsFeedHandler はお知らせコレクションをJSONで配信するHTTPハンドラ
type NewsFeedHandler struct {
	lister NewsLister
	logger *slog.Logger
}

// NewNewsFeedHandler は新しいNewsFeedHandlerを作成します
func NewNewsFeedHandler(lister NewsLister, logger *slog.Logger) *NewsFeedHandler {
	return &NewsFeedHandler{
		lister: lister,
		logger: logger,
	}
}

// ServeHTTP はお知らせ全件を取込順のJSON配列として返す。
// 取得に失敗した場合はerrorフィールドを持つオブジェクトを返す
func (h *NewsFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	items, err := h.lister.ListAll(r.Context())
	if err != nil {
		h.logger.Error("フィードの取得に失敗", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "ニュースデータの取得に失敗しました。"})
		return
	}

	_ = json.NewEncoder(w).Encode(items)
}
