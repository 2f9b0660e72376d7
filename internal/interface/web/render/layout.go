package render

// MaxCardImageHeight はカード画像の高さ上限(px)
const MaxCardImageHeight = 300

// Measurer はカードの本文側の描画高さ(px)を測る関数。
// 描画環境の測定値を注入するための口で、テストや非DOM環境では
// 推定値を返す実装を渡す。
type Measurer func(card NewsCard) int

// CardImageHeight は本文側の高さと上限から画像の高さを決める
func CardImageHeight(contentHeight int) int {
	if contentHeight > MaxCardImageHeight {
		return MaxCardImageHeight
	}
	return contentHeight
}

// AdjustCardLayout は各カードの画像高さを本文高さに合わせて設定し直す。
// 新しいカードを含む描画のたびに呼び直す必要がある（本文高さは描画結果に
// 依存するため）。
func AdjustCardLayout(cards []NewsCard, measure Measurer) {
	if measure == nil {
		measure = EstimateContentHeight
	}
	for i := range cards {
		cards[i].ImageHeight = CardImageHeight(measure(cards[i]))
	}
}

// 本文高さ推定のパラメータ。タグ行・タイトル・余白の固定分に、
// 要約の行数に応じた高さを足す。
const (
	estimateBaseHeight   = 96
	estimateLineHeight   = 24
	estimateRunesPerLine = 40
)

// EstimateContentHeight は実測値が無い場合の本文高さの推定実装
func EstimateContentHeight(card NewsCard) int {
	runes := len([]rune(card.ShortSummary))
	lines := runes / estimateRunesPerLine
	if runes%estimateRunesPerLine != 0 {
		lines++
	}
	return estimateBaseHeight + lines*estimateLineHeight
}
