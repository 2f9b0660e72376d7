// Package web は求人・お知らせページのHTTPインターフェースを提供する。
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/itfweb/recruit-site/internal/core/posting"
	"github.com/itfweb/recruit-site/internal/interface/web/render"
)

// PostingSearcher は求人検索サービスのインターフェース
type PostingSearcher interface {
	Search(ctx context.Context, criteria posting.SearchCriteria) (*posting.SearchResult, error)
}

// PostingHandler は求人ページのHTTPハンドラ
type PostingHandler struct {
	searcher PostingSearcher
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewPostingHandler は新しいPostingHandlerを作成します
func NewPostingHandler(searcher PostingSearcher, renderer *render.Renderer, logger *slog.Logger) *PostingHandler {
	return &PostingHandler{
		searcher: searcher,
		renderer: renderer,
		logger:   logger,
	}
}

// ServeHTTP はGETクエリパラメータを検索条件として求人ページを描画する。
// クエリの実行に失敗した場合は部分的な描画をせずリクエスト全体を失敗させる。
func (h *PostingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	criteria := criteriaFromQuery(r)

	result, err := h.searcher.Search(r.Context(), criteria)
	if err != nil {
		h.logger.Error("求人検索に失敗", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := render.NewPostingPageView(criteria, result)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.PostingPage(w, view); err != nil {
		h.logger.Error("求人ページの描画に失敗", slog.String("error", err.Error()))
	}
}

// criteriaFromQuery はURLクエリパラメータから検索条件を組み立てる。
// 欠落・空のパラメータは「絞り込みなし」として扱う。
func criteriaFromQuery(r *http.Request) posting.SearchCriteria {
	q := r.URL.Query()
	return posting.SearchCriteria{
		Keyword:       q.Get("q"),
		Location:      q.Get("location"),
		JobType:       q.Get("job_type"),
		JapaneseLevel: q.Get("japanese_level"),
		JobCategory:   q.Get("job_category"),
	}
}
