// Package detector は物語の元言語を分類します。
// 判定結果は参考情報としてログに出すだけで、下流の処理は変わりません
// （翻訳先は常に中国語です）。
package detector

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// FallbackLanguage は検出ケーパビリティが使えないときの固定の言語コードなのだ。
const FallbackLanguage = "auto"

// langCodeRe は ISO 639-1/639-3 風のコードだけを受理するのだ。
var langCodeRe = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]+)?$`)

// Detector は言語検出の狭い契約です。失敗はフォールバックコードへ畳み込まれ、
// 呼び出し側へエラーが伝播することはありません。
type Detector interface {
	Detect(ctx context.Context, text string) string
}

// TextGenerator は検出に使う生成系ケーパビリティの最小契約です。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Prompter は検出用プロンプトを組み立てる側の契約です。
type Prompter interface {
	DetectPrompt(text string) (string, error)
}

// GeminiDetector は生成モデルに言語コードを答えさせる実装です。
type GeminiDetector struct {
	gen      TextGenerator
	prompter Prompter
}

// NewGeminiDetector は GeminiDetector を生成します。
func NewGeminiDetector(gen TextGenerator, prompter Prompter) *GeminiDetector {
	return &GeminiDetector{gen: gen, prompter: prompter}
}

// Detect は物語全体の言語コードを返します。
// モデルの応答が取れない・コードとして解釈できない場合は
// 警告ログを出して FallbackLanguage を返し、実行は続行されます。
func (d *GeminiDetector) Detect(ctx context.Context, text string) string {
	prompt, err := d.prompter.DetectPrompt(text)
	if err != nil {
		slog.Warn("検出プロンプトの構築に失敗したので既定コードに縮退するのだ", "error", err)
		return FallbackLanguage
	}

	raw, err := d.gen.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("言語検出に失敗したので既定コードに縮退するのだ", "error", err)
		return FallbackLanguage
	}

	code := sanitizeCode(raw)
	if code == "" {
		slog.Warn("言語コードとして解釈できない応答なのだ", "raw", raw)
		return FallbackLanguage
	}
	return code
}

// StaticDetector は検出ケーパビリティが無いときのフォールバック実装です。
type StaticDetector struct {
	Code string
}

// Detect は固定コードをそのまま返します。
func (d *StaticDetector) Detect(ctx context.Context, text string) string {
	if d.Code == "" {
		return FallbackLanguage
	}
	return d.Code
}

// sanitizeCode はモデル応答の先頭トークンを取り出して言語コード形式か検証するのだ。
func sanitizeCode(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if fields := strings.Fields(code); len(fields) > 0 {
		code = fields[0]
	}
	code = strings.Trim(code, `"'.`)
	if !langCodeRe.MatchString(code) {
		return ""
	}
	return code
}
