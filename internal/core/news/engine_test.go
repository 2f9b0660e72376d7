package news

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	items []Item
	err   error
	calls int
}

func (f *stubFetcher) FetchAll(ctx context.Context) ([]Item, error) {
	f.calls++
	return f.items, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{AddSource: false}))
}

func testItem(title, category string, createdAt time.Time) Item {
	return Item{
		Title:     title,
		Category:  category,
		Date:      createdAt.Format("2006-01-02"),
		CreatedAt: Timestamp{Time: createdAt},
		Summary:   "概要 " + title,
		Content:   "本文 " + title,
		PostedBy:  "admin",
	}
}

func loadedEngine(t *testing.T, items []Item) *Engine {
	t.Helper()
	engine := NewEngine(&stubFetcher{items: items}, WithEngineLogger(testLogger()))
	require.NoError(t, engine.Load(context.Background()))
	return engine
}

func TestEngine_LoadTransitionsToReady(t *testing.T) {
	fetcher := &stubFetcher{items: []Item{testItem("a", "イベント", time.Now())}}
	engine := NewEngine(fetcher, WithEngineLogger(testLogger()))

	assert.Equal(t, StateUninitialized, engine.State())
	require.NoError(t, engine.Load(context.Background()))
	assert.Equal(t, StateReady, engine.State())
	assert.Equal(t, 1, fetcher.calls)
}

func TestEngine_LoadIsOnce(t *testing.T) {
	fetcher := &stubFetcher{items: []Item{}}
	engine := NewEngine(fetcher, WithEngineLogger(testLogger()))

	require.NoError(t, engine.Load(context.Background()))
	assert.Error(t, engine.Load(context.Background()))
	assert.Equal(t, 1, fetcher.calls)
}

func TestEngine_LoadFailureEntersFetchFailed(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("network unreachable")}
	engine := NewEngine(fetcher, WithEngineLogger(testLogger()))

	err := engine.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFetchFailed, engine.State())
	assert.Error(t, engine.Err())

	// 失敗後はすべての表示操作が空状態として振る舞う
	assert.Empty(t, engine.Items())
	assert.Empty(t, engine.Derive(DefaultFilterCriteria()))
	assert.Empty(t, engine.Latest(3))
	assert.True(t, engine.Find("1").IsAbsent())
}

func TestEngine_EmptyCollectionIsNormal(t *testing.T) {
	engine := loadedEngine(t, []Item{})

	assert.Equal(t, StateReady, engine.State())
	assert.Empty(t, engine.Derive(DefaultFilterCriteria()))
}

func TestEngine_AssignsStableIDsAtIngestion(t *testing.T) {
	items := []Item{
		testItem("a", "イベント", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}
	engine := loadedEngine(t, items)

	loaded := engine.Items()
	require.Len(t, loaded, 2)
	assert.NotEmpty(t, loaded[0].ID)
	assert.NotEmpty(t, loaded[1].ID)
	assert.NotEqual(t, loaded[0].ID, loaded[1].ID)
}

func TestEngine_KeepsProvidedIDs(t *testing.T) {
	item := testItem("a", "イベント", time.Now())
	item.ID = "42"
	engine := loadedEngine(t, []Item{item})

	assert.Equal(t, "42", engine.Items()[0].ID)
}

func TestEngine_DuplicateContentGetsDistinctIDs(t *testing.T) {
	same := testItem("同一", "お知らせ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	engine := loadedEngine(t, []Item{same, same})

	loaded := engine.Items()
	assert.NotEqual(t, loaded[0].ID, loaded[1].ID)
}

func TestEngine_DeriveFiltersByExactCategory(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "イベント", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
		testItem("c", "イベント", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
	})

	derived := engine.Derive(FilterCriteria{Category: "イベント", Order: DateOrderDesc})

	require.Len(t, derived, 2)
	for _, item := range derived {
		assert.Equal(t, "イベント", item.Category)
	}
}

func TestEngine_DeriveCategoryAllReturnsEverything(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "イベント", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	})

	assert.Len(t, engine.Derive(FilterCriteria{Category: CategoryAll, Order: DateOrderDesc}), 2)
}

func TestEngine_DeriveSortsByCreatedAtDesc(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("oldest", "お知らせ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("newest", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
		testItem("middle", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	})

	derived := engine.Derive(DefaultFilterCriteria())

	require.Len(t, derived, 3)
	assert.Equal(t, "newest", derived[0].Title)
	assert.Equal(t, "middle", derived[1].Title)
	assert.Equal(t, "oldest", derived[2].Title)
}

func TestEngine_DeriveSortsByCreatedAtAsc(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("newest", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
		testItem("oldest", "お知らせ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	derived := engine.Derive(FilterCriteria{Category: CategoryAll, Order: DateOrderAsc})

	assert.Equal(t, "oldest", derived[0].Title)
	assert.Equal(t, "newest", derived[1].Title)
}

func TestEngine_DeriveSortIsStableForEqualTimestamps(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := loadedEngine(t, []Item{
		testItem("first", "お知らせ", at),
		testItem("second", "お知らせ", at),
		testItem("third", "お知らせ", at),
	})

	derived := engine.Derive(DefaultFilterCriteria())

	assert.Equal(t, []string{"first", "second", "third"},
		[]string{derived[0].Title, derived[1].Title, derived[2].Title})
}

func TestEngine_DeriveDoesNotMutateBaseCollection(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "イベント", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
	})

	before := engine.Items()
	engine.Derive(FilterCriteria{Category: "イベント", Order: DateOrderAsc})
	after := engine.Items()

	assert.Equal(t, before, after)
}

func TestEngine_LatestReturnsMostRecentFirst(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("d1", "お知らせ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("d4", "お知らせ", time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)),
		testItem("d2", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
		testItem("d3", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
	})

	latest := engine.Latest(3)

	require.Len(t, latest, 3)
	assert.Equal(t, "d4", latest[0].Title)
	assert.Equal(t, "d3", latest[1].Title)
	assert.Equal(t, "d2", latest[2].Title)
}

func TestEngine_LatestWithFewerItems(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("only", "お知らせ", time.Now()),
	})

	assert.Len(t, engine.Latest(3), 1)
}

func TestEngine_FindRoundTripsThroughDerivedViews(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "イベント", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
		testItem("c", "イベント", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	})

	// 並び替え済みビューのカードが持つ識別子から、基底コレクションの
	// 同じ項目に必ず戻れる
	for _, view := range [][]Item{
		engine.Derive(FilterCriteria{Category: CategoryAll, Order: DateOrderAsc}),
		engine.Derive(FilterCriteria{Category: "イベント", Order: DateOrderDesc}),
		engine.Latest(2),
	} {
		for _, card := range view {
			found, ok := engine.Find(card.ID).Get()
			require.True(t, ok)
			assert.Equal(t, card, found)
		}
	}
}

func TestEngine_FindUnknownIDIsAbsent(t *testing.T) {
	engine := loadedEngine(t, []Item{testItem("a", "お知らせ", time.Now())})

	assert.True(t, engine.Find("missing").IsAbsent())
}

func TestEngine_FindByPosition(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "お知らせ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		testItem("b", "お知らせ", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
		testItem("c", "お知らせ", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
	})

	item, ok := engine.FindByPosition(1).Get()
	require.True(t, ok)
	assert.Equal(t, "b", item.Title)
}

func TestEngine_FindByPositionOutOfRange(t *testing.T) {
	engine := loadedEngine(t, []Item{
		testItem("a", "お知らせ", time.Now()),
		testItem("b", "お知らせ", time.Now()),
		testItem("c", "お知らせ", time.Now()),
	})

	assert.True(t, engine.FindByPosition(999).IsAbsent())
	assert.True(t, engine.FindByPosition(-1).IsAbsent())
}
