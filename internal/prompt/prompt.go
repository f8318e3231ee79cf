// Package prompt は生成モデルへ渡す指示文のテンプレートを管理するのだ。
// テンプレート本文は Markdown としてバイナリに埋め込むのだよ。
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed translate.md
var translateTemplate string

//go:embed detect.md
var detectTemplate string

// TemplateData はテンプレートに流し込む値の入れ物なのだ。
type TemplateData struct {
	InputText  string
	TargetLang string
}

// Builder は翻訳・言語検出それぞれのプロンプトを組み立てる構造体なのだ。
type Builder struct {
	translate  *template.Template
	detect     *template.Template
	targetLang string
}

// NewBuilder は埋め込みテンプレートを解析して Builder を返すのだ。
// テンプレートが壊れている場合はビルド時の不備なので即エラーにするのだ。
func NewBuilder(targetLang string) (*Builder, error) {
	tr, err := template.New("translate").Parse(translateTemplate)
	if err != nil {
		return nil, fmt.Errorf("翻訳テンプレートの解析に失敗したのだ: %w", err)
	}
	de, err := template.New("detect").Parse(detectTemplate)
	if err != nil {
		return nil, fmt.Errorf("検出テンプレートの解析に失敗したのだ: %w", err)
	}
	return &Builder{translate: tr, detect: de, targetLang: targetLang}, nil
}

// TranslatePrompt は1文分の翻訳指示を組み立てるのだ。
func (b *Builder) TranslatePrompt(text string) (string, error) {
	return b.render(b.translate, TemplateData{InputText: text, TargetLang: b.targetLang})
}

// DetectPrompt は言語判定の指示を組み立てるのだ。
func (b *Builder) DetectPrompt(text string) (string, error) {
	return b.render(b.detect, TemplateData{InputText: text})
}

func (b *Builder) render(t *template.Template, data TemplateData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("プロンプトの組み立てに失敗したのだ: %w", err)
	}
	return sb.String(), nil
}
