// Package stylizer は翻訳済みの文にアニメ風の演出スタイルと話者を割り当てます。
// 割り当ては文のインデックスに対して決定論的で、乱数は一切使いません。
package stylizer

import (
	"fmt"

	"github.com/kk8888888/Generator-Comic/pkg/domain"
)

// speakerLabels は演出スタイルごとの固定話者ラベルなのだ。
var speakerLabels = map[domain.StyleTag]string{
	domain.StyleAction:    "热血角色",
	domain.StyleCute:      "萌系角色",
	domain.StyleNarration: "旁白",
}

// Stylizer は固定パレットのローテーションで演出行を組み立てます。
type Stylizer struct {
	palette []domain.StyleTag
}

// New は Stylizer を生成します。palette が空ならデフォルトの固定順序を使います。
func New(palette []domain.StyleTag) *Stylizer {
	if len(palette) == 0 {
		palette = domain.DefaultStylePalette
	}
	return &Stylizer{palette: palette}
}

// Stylize は原文と訳文の対から演出行の列を組み立てます。
// i 番目の文には palette[i mod len(palette)] のスタイルが割り当てられるので、
// 同じ入力に対する結果は常に同一です。出力の長さは必ず原文の数と一致します。
func (s *Stylizer) Stylize(originals, translated []string) []domain.StyledLine {
	lines := make([]domain.StyledLine, 0, len(originals))
	for i, original := range originals {
		// 訳文が欠けている文は原文をそのまま使うのだ（パススルー縮退と同じ扱い）
		text := original
		if i < len(translated) && translated[i] != "" {
			text = translated[i]
		}

		tag := s.palette[i%len(s.palette)]
		lines = append(lines, domain.StyledLine{
			Index:          i,
			OriginalText:   original,
			TranslatedText: decorate(tag, text),
			Style:          tag,
			Speaker:        SpeakerLabel(tag),
		})
	}
	return lines
}

// SpeakerLabel はスタイルから話者ラベルを導出します。スタイル以外の状態には依存しません。
func SpeakerLabel(tag domain.StyleTag) string {
	if label, ok := speakerLabels[tag]; ok {
		return label
	}
	return speakerLabels[domain.StyleNarration]
}

// decorate はスタイルごとの固定装飾を訳文に適用するのだ。
func decorate(tag domain.StyleTag, text string) string {
	switch tag {
	case domain.StyleAction:
		return text + "！！"
	case domain.StyleCute:
		return text + "～♪"
	case domain.StyleNarration:
		return fmt.Sprintf("（%s）", text)
	default:
		return text
	}
}
