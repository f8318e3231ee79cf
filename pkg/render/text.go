package render

import (
	"fmt"
	"strings"

	"github.com/kk8888888/Generator-Comic/pkg/domain"
)

const textRuleWidth = 38

// TextRenderer は描画ケーパビリティが使えないときのフォールバックレンダラです。
// GraphicRenderer と論理的に同じ内容（話者・スタイル・台詞・背景色名）を
// 固定レイアウトのプレーンテキストとして出力します。
// 出力は入力にのみ依存する決定論的なものなので、同じ入力からは
// バイト単位で同一の成果物が得られます。
type TextRenderer struct {
	title string
}

// NewTextRenderer は TextRenderer を生成します。
func NewTextRenderer(title string) *TextRenderer {
	return &TextRenderer{title: title}
}

// Ext は ".txt" を返します。
func (t *TextRenderer) Ext() string { return ".txt" }

// RenderPanel は1コマ分をテキストブロックとして出力します。
func (t *TextRenderer) RenderPanel(panel domain.Panel) (Artifact, error) {
	var sb strings.Builder
	rule := strings.Repeat("=", textRuleWidth)

	sb.WriteString(rule + "\n")
	if t.title != "" {
		fmt.Fprintf(&sb, "%s · 第%d幕\n", t.title, panel.Line.Index+1)
	}
	t.writePanelBody(&sb, panel)
	sb.WriteString(rule + "\n")

	return Artifact{Data: []byte(sb.String()), MimeType: "text/plain; charset=utf-8"}, nil
}

// RenderPage はグリッド1ページ分を1つのテキストブロックにまとめます。
func (t *TextRenderer) RenderPage(page domain.Page) (Artifact, error) {
	var sb strings.Builder
	rule := strings.Repeat("=", textRuleWidth)

	sb.WriteString(rule + "\n")
	if t.title != "" {
		fmt.Fprintf(&sb, "%s · 第%d幕 (%dx%d)\n", t.title, page.Number, page.Rows, page.Cols)
	} else {
		fmt.Fprintf(&sb, "第%d页 (%dx%d)\n", page.Number, page.Rows, page.Cols)
	}

	for _, panel := range page.Panels {
		sb.WriteString(strings.Repeat("-", textRuleWidth) + "\n")
		fmt.Fprintf(&sb, "格子 [%d,%d]\n", panel.Row, panel.Col)
		t.writePanelBody(&sb, panel)
	}
	sb.WriteString(rule + "\n")

	return Artifact{Data: []byte(sb.String()), MimeType: "text/plain; charset=utf-8"}, nil
}

// writePanelBody は両方のモードで共通する論理内容を書き出すのだ。
func (t *TextRenderer) writePanelBody(sb *strings.Builder, panel domain.Panel) {
	fmt.Fprintf(sb, "样式: %s\n", panel.Line.Style)
	fmt.Fprintf(sb, "话者: %s\n", panel.Line.Speaker)
	fmt.Fprintf(sb, "背景: %s\n", panel.Background.Name)
	fmt.Fprintf(sb, "原文: %s\n", panel.Line.OriginalText)
	fmt.Fprintf(sb, "台词: %s\n", panel.Line.TranslatedText)
}
