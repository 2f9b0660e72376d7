// Package query は posts テーブルに対する条件付き検索クエリを組み立てる。
//
// 条件値は常に束縛パラメータとして渡し、SQL文字列には決して連結しない。
package query

import (
	"fmt"
	"strings"
)

// Builder は「固定の基底述語 + 任意の追加述語の列」を構造化して保持し、
// プレースホルダ付きSQLと引数リストに変換する。
type Builder struct {
	table   string
	columns []string
	conds   []string
	args    []any
	orderBy string
}

// NewBuilder は基底述語を持つ新しいBuilderを作成する。
// 基底述語は常に先頭に置かれ、呼び出し側の入力では変更できない。
func NewBuilder(table string, columns []string, baseColumn, baseValue string) *Builder {
	b := &Builder{
		table:   table,
		columns: columns,
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", baseColumn, len(b.args)+1))
	b.args = append(b.args, baseValue)
	return b
}

// AndEqual は完全一致の述語を追加する。値が空文字列の場合は何もしない。
func (b *Builder) AndEqual(column, value string) *Builder {
	if value == "" {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
	return b
}

// AndContainsAny は指定カラムのいずれかに部分文字列が含まれる述語を追加する。
// 値が空文字列の場合は何もしない。
func (b *Builder) AndContainsAny(columns []string, term string) *Builder {
	if term == "" || len(columns) == 0 {
		return b
	}
	placeholder := fmt.Sprintf("$%d", len(b.args)+1)
	likes := make([]string, 0, len(columns))
	for _, col := range columns {
		likes = append(likes, fmt.Sprintf("%s LIKE %s", col, placeholder))
	}
	b.conds = append(b.conds, "("+strings.Join(likes, " OR ")+")")
	b.args = append(b.args, "%"+term+"%")
	return b
}

// OrderBy は並び順を設定する
func (b *Builder) OrderBy(clause string) *Builder {
	b.orderBy = clause
	return b
}

// Build はSELECT文と束縛パラメータを返す
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(b.conds, " AND "))
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	return sb.String(), b.args
}
