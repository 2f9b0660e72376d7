package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itfweb/recruit-site/internal/core/posting"
	"github.com/itfweb/recruit-site/internal/interface/web/render"
)

type stubSearcher struct {
	result       *posting.SearchResult
	err          error
	lastCriteria posting.SearchCriteria
}

func (s *stubSearcher) Search(ctx context.Context, criteria posting.SearchCriteria) (*posting.SearchResult, error) {
	s.lastCriteria = criteria
	return s.result, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{AddSource: false}))
}

func emptySearchResult() *posting.SearchResult {
	return &posting.SearchResult{
		Postings: []*posting.JobPosting{},
		Options:  &posting.FilterOptions{},
	}
}

func TestPostingHandler_ParsesCriteriaFromQuery(t *testing.T) {
	searcher := &stubSearcher{result: emptySearchResult()}
	handler := NewPostingHandler(searcher, render.NewRenderer(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/saiyou?q=介護&location=大阪&job_type=正社員&japanese_level=N3&job_category=医療", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, posting.SearchCriteria{
		Keyword:       "介護",
		Location:      "大阪",
		JobType:       "正社員",
		JapaneseLevel: "N3",
		JobCategory:   "医療",
	}, searcher.lastCriteria)
}

func TestPostingHandler_RendersPostings(t *testing.T) {
	searcher := &stubSearcher{result: &posting.SearchResult{
		Postings: []*posting.JobPosting{
			{ID: 1, Title: "介護スタッフ", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		Options: &posting.FilterOptions{Locations: []string{"大阪"}},
	}}
	handler := NewPostingHandler(searcher, render.NewRenderer(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/saiyou?q=介護", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "マッチング求人")
	assert.Contains(t, body, "介護スタッフ")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestPostingHandler_NoResultsRendersMessage(t *testing.T) {
	searcher := &stubSearcher{result: emptySearchResult()}
	handler := NewPostingHandler(searcher, render.NewRenderer(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/saiyou", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "求人が見つかりませんでした。")
	assert.Contains(t, rec.Body.String(), "最近追加された求人")
}

func TestPostingHandler_QueryFailureIsFatal(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("connection refused")}
	handler := NewPostingHandler(searcher, render.NewRenderer(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/saiyou", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// 部分的な描画はせずリクエスト全体を失敗させる
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "saiyou-section")
}

func TestPostingHandler_RejectsNonGET(t *testing.T) {
	handler := NewPostingHandler(&stubSearcher{result: emptySearchResult()}, render.NewRenderer(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/saiyou", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPostingHandler_RepeatedIdenticalRequestsAreDeterministic(t *testing.T) {
	searcher := &stubSearcher{result: &posting.SearchResult{
		Postings: []*posting.JobPosting{
			{ID: 1, Title: "同日A", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "同日B", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		Options: &posting.FilterOptions{},
	}}
	handler := NewPostingHandler(searcher, render.NewRenderer(), testLogger())

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/saiyou?location=大阪", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}
