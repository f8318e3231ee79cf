// Package splitter は物語テキストを文単位に分解する軽量スプリッターです。
// 文法解析は行わず、終端記号と改行だけを境界として扱います。
package splitter

import "strings"

// terminators は文の終端とみなす記号の集合なのだ。
// ASCII と全角（中国語・日本語）の両方をカバーするのだ。
const terminators = "。！？!?.\n"

// Split はテキストを文の列に分解します。
// 空白のみの断片は捨てられ、入力順序はそのまま保たれます。
// どんな入力でも失敗せず、空入力からは空の列が返ります。
func Split(text string) []string {
	var sentences []string
	var buf strings.Builder

	flush := func() {
		s := strings.TrimSpace(buf.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		buf.Reset()
	}

	for _, r := range text {
		buf.WriteRune(r)
		if strings.ContainsRune(terminators, r) {
			flush()
		}
	}
	flush()

	return sentences
}
