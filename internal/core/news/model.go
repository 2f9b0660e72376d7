package news

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Item はお知らせ1件を表す。
// ID は取込時に一度だけ採番される安定識別子で、以後のフィルタ・並び替えで
// 生成される派生ビューにもそのまま引き継がれる。配列位置を識別子として
// 使うことはない。
type Item struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Date      string    `json:"date"` // 表示用（YYYY-MM-DD）。比較には使わない
	CreatedAt Timestamp `json:"created_at"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	PostedBy  string    `json:"posted_by"`
}

// contentKey は配信元がIDを持たない場合のフォールバック識別子を導出する
func (i Item) contentKey() string {
	h := sha256.Sum256([]byte(i.Title + "\n" + i.Date + "\n" + i.CreatedAt.String()))
	return hex.EncodeToString(h[:8])
}

// Timestamp はフィード上のタイムスタンプを表す。
// RFC 3339 形式と "2006-01-02 15:04:05" 形式の両方を受け付ける。
type Timestamp struct {
	time.Time
}

// timestampLayouts は受け付けるタイムスタンプ形式
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON はJSON文字列からTimestampを復元する
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", s)
}

// MarshalJSON はTimestampをRFC 3339のJSON文字列に変換する
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// String は比較・ハッシュ用の安定した文字列表現を返す
func (t Timestamp) String() string {
	return t.Format(time.RFC3339)
}

// CategoryAll は「全カテゴリ」を意味するセンチネル値
const CategoryAll = "all"

// DateOrder は掲載日時の並び順を表す
type DateOrder string

const (
	// DateOrderDesc は新しい順
	DateOrderDesc DateOrder = "desc"
	// DateOrderAsc は古い順
	DateOrderAsc DateOrder = "asc"
)

// FilterCriteria はお知らせ一覧の絞り込みと並び順を表す
type FilterCriteria struct {
	Category string
	Order    DateOrder
}

// DefaultFilterCriteria は既定の表示条件（全カテゴリ・新しい順）を返す。
// 既定値はここで定義され、描画層のコントロール初期値には依存しない。
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Category: CategoryAll,
		Order:    DateOrderDesc,
	}
}

// shortSummaryWordLimit は要約に残す単語数の上限
const shortSummaryWordLimit = 50

// ShortSummary は要約を空白区切りの先頭50語に切り詰める。
// 元の要約が50語を超える場合のみ末尾に省略記号を付ける。
func ShortSummary(summary string) string {
	if summary == "" {
		return ""
	}
	words := strings.Fields(summary)
	if len(words) <= shortSummaryWordLimit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:shortSummaryWordLimit], " ") + "..."
}
