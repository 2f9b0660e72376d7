package news

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/mo"
)

// Fetcher はお知らせコレクションを配信元から取得するインターフェース
type Fetcher interface {
	// FetchAll はコレクション全件を配信順で返す
	FetchAll(ctx context.Context) ([]Item, error)
}

// State はエンジンの状態を表す
type State int

const (
	// StateUninitialized は取得前の初期状態
	StateUninitialized State = iota
	// StateFetching は取得中
	StateFetching
	// StateReady は取得済みで表示操作を受け付ける状態
	StateReady
	// StateFetchFailed は取得失敗。このページ表示の間は空状態のまま回復しない
	StateFetchFailed
)

// String はStateの文字列表現を返す
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// Engine はページ表示1回分のお知らせコレクションを保持し、派生ビューを提供する。
// 取得したコレクションは取込順のまま変更されず、フィルタ・並び替えは常に
// コピーに対して行われる。1リクエスト内の逐次利用を前提とし、複数ゴルーチン
// からの併用は想定しない。
type Engine struct {
	fetcher Fetcher
	logger  *slog.Logger

	state    State
	items    []Item // 取込順。以後変更しない
	fetchErr error
}

// EngineOption はEngine構築時のオプション
type EngineOption func(*Engine)

// WithEngineLogger はロガーを差し替える
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine は新しいEngineを作成する
func NewEngine(fetcher Fetcher, opts ...EngineOption) *Engine {
	e := &Engine{
		fetcher: fetcher,
		logger:  slog.Default(),
		state:   StateUninitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load はコレクションを一度だけ取得する。
// 失敗した場合はコレクションを空にしてStateFetchFailedへ遷移し、以後の
// 表示操作はすべて空状態として扱われる（自動リトライはしない）。
func (e *Engine) Load(ctx context.Context) error {
	if e.state != StateUninitialized {
		return fmt.Errorf("news engine already loaded (state=%s)", e.state)
	}

	e.state = StateFetching
	items, err := e.fetcher.FetchAll(ctx)
	if err != nil {
		e.state = StateFetchFailed
		e.items = nil
		e.fetchErr = err
		e.logger.Error("お知らせの取得に失敗", slog.String("error", err.Error()))
		return fmt.Errorf("failed to fetch news collection: %w", err)
	}

	e.items = assignIDs(items)
	e.state = StateReady
	e.logger.Info("お知らせを取得", slog.Int("count", len(e.items)))
	return nil
}

// assignIDs は識別子を持たない項目に安定識別子を採番する。
// 採番は取込時の一度きりで、派生ビューは常に同じ識別子を引き継ぐ。
func assignIDs(items []Item) []Item {
	seen := make(map[string]int, len(items))
	assigned := make([]Item, len(items))
	for i, item := range items {
		if item.ID == "" {
			key := item.contentKey()
			// 内容が同一の項目は連番で区別する
			if n := seen[key]; n > 0 {
				item.ID = fmt.Sprintf("%s-%d", key, n+1)
			} else {
				item.ID = key
			}
			seen[key]++
		}
		assigned[i] = item
	}
	return assigned
}

// State は現在の状態を返す
func (e *Engine) State() State {
	return e.state
}

// Err は取得失敗時のエラーを返す。未失敗ならnil
func (e *Engine) Err() error {
	return e.fetchErr
}

// Items は取込順のコレクションのコピーを返す
func (e *Engine) Items() []Item {
	return slices.Clone(e.items)
}

// Derive は絞り込みと並び替えを適用した派生ビューを返す。
// 基底コレクションは変更しない。並び替えは掲載日時（CreatedAt）の比較で行い、
// 同時刻の項目は絞り込み前の相対順を保つ。
func (e *Engine) Derive(criteria FilterCriteria) []Item {
	derived := make([]Item, 0, len(e.items))
	for _, item := range e.items {
		if criteria.Category != CategoryAll && criteria.Category != "" && item.Category != criteria.Category {
			continue
		}
		derived = append(derived, item)
	}

	switch criteria.Order {
	case DateOrderAsc:
		slices.SortStableFunc(derived, func(a, b Item) int {
			return a.CreatedAt.Compare(b.CreatedAt.Time)
		})
	default: // desc
		slices.SortStableFunc(derived, func(a, b Item) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	}

	return derived
}

// Latest は掲載日時の新しい順に先頭n件を返す
func (e *Engine) Latest(n int) []Item {
	latest := e.Derive(DefaultFilterCriteria())
	if len(latest) > n {
		latest = latest[:n]
	}
	return latest
}

// Find は安定識別子でお知らせを検索する
func (e *Engine) Find(id string) mo.Option[Item] {
	for _, item := range e.items {
		if item.ID == id {
			return mo.Some(item)
		}
	}
	return mo.None[Item]()
}

// FindByPosition は取込順の位置でお知らせを検索する。
// 旧形式のリンク（配列位置をそのままIDに使っていたURL）の互換用。
func (e *Engine) FindByPosition(pos int) mo.Option[Item] {
	if pos < 0 || pos >= len(e.items) {
		return mo.None[Item]()
	}
	return mo.Some(e.items[pos])
}
