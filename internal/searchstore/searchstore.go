// Package searchstore は取得済みのテーブルデータに対するライブ検索を支える。
// 再フェッチせずに部分一致でインクリメンタルに絞り込むための汎用の入れ物。
package searchstore

import "strings"

// Field はレコードから検索対象のテキストを1つ取り出す関数。
// フィールド名→Field の表を構築時に渡し、以後は差し替えない。
type Field[T any] func(T) string

// Store は全件(data)と現在の絞り込み結果(filtered)を持つ。
// filtered は (data, fields, 直近のterm) から再計算できる純粋な派生値で、
// 単独で書き換えてはいけない。
type Store[T any] struct {
	data     []T
	filtered []T
	fields   map[string]Field[T]
}

// New は未フィルタ状態（filtered == data）のStoreを返す。
// fields が空のときは検索が常に0件になる。「全フィールド一致」ではない点に注意。
func New[T any](data []T, fields map[string]Field[T]) *Store[T] {
	return &Store[T]{
		data:     data,
		filtered: data,
		fields:   fields,
	}
}

func (s *Store[T]) Data() []T {
	return s.data
}

func (s *Store[T]) Filtered() []T {
	return s.filtered
}

// Search は filtered を丸ごと入れ替える。dataの並び順は保つ（安定フィルタ）。
// 大文字小文字は区別せず、空のtermは全件に一致する。
func (s *Store[T]) Search(term string) {
	term = strings.ToLower(term)
	filtered := make([]T, 0, len(s.data))
	for _, item := range s.data {
		if s.matches(item, term) {
			filtered = append(filtered, item)
		}
	}
	s.filtered = filtered
}

func (s *Store[T]) matches(item T, lowerTerm string) bool {
	for _, field := range s.fields {
		if strings.Contains(strings.ToLower(field(item)), lowerTerm) {
			return true
		}
	}
	return false
}

// Update はdataを差し替え、filteredもそのままnewDataに戻す。
// 直前の検索termを引き継がないのは意図した契約で、再検索は呼び出し側の責務。
func (s *Store[T]) Update(newData []T) {
	s.data = newData
	s.filtered = newData
}
