// Package translator は文を中国語へ翻訳します。
// 外部の翻訳ケーパビリティが使えない・失敗する場合は原文をそのまま返す
// パススルー縮退が仕様で、1文の失敗が他の文や実行全体を巻き込むことはありません。
package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Translator は翻訳ケーパビリティの狭い契約です。
type Translator interface {
	// Translate は1つのテキストの中国語訳を返します。
	Translate(ctx context.Context, text string) (string, error)
	// TranslateAll は文ごとに独立して翻訳し、入力と同じ順序・同じ長さの列を返します。
	// 失敗した文はその文だけ原文のまま残ります。エラーは返しません。
	TranslateAll(ctx context.Context, sentences []string) []string
}

// TextGenerator は翻訳に使う生成系ケーパビリティの最小契約です。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Prompter は翻訳用プロンプトを組み立てる側の契約です。
type Prompter interface {
	TranslatePrompt(text string) (string, error)
}

// Options は GeminiTranslator の実行時パラメータです。
type Options struct {
	// CallTimeout は1回の翻訳呼び出しに許す上限時間です。超過は失敗扱いで縮退します。
	CallTimeout time.Duration
	// RateInterval は連続する翻訳呼び出しの最小間隔です。
	RateInterval time.Duration
	// CacheTTL は同一文のメモ化キャッシュの有効期間です。
	CacheTTL time.Duration
}

// GeminiTranslator は生成モデル越しに翻訳する実装です。
// 同じ文は一度しかネットワークに出さないように go-cache でメモ化し、
// レートリミッタで呼び出し間隔を制御します。
type GeminiTranslator struct {
	gen      TextGenerator
	prompter Prompter
	limiter  *rate.Limiter
	memo     *cache.Cache
	timeout  time.Duration
}

// NewGeminiTranslator は GeminiTranslator を生成します。
func NewGeminiTranslator(gen TextGenerator, prompter Prompter, opts Options) *GeminiTranslator {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 20 * time.Second
	}
	if opts.RateInterval <= 0 {
		opts.RateInterval = 500 * time.Millisecond
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}

	return &GeminiTranslator{
		gen:      gen,
		prompter: prompter,
		// Burst 2 で先頭の2文だけは待たずに飛ばせるのだ
		limiter: rate.NewLimiter(rate.Every(opts.RateInterval), 2),
		memo:    cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		timeout: opts.CallTimeout,
	}
}

// Translate は1文を翻訳します。キャッシュにあればネットワークへは出ません。
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok := t.memo.Get(text); ok {
		return cached.(string), nil
	}

	prompt, err := t.prompter.TranslatePrompt(text)
	if err != nil {
		return "", fmt.Errorf("翻訳プロンプトの構築に失敗しました: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := t.gen.Generate(callCtx, prompt)
	if err != nil {
		return "", fmt.Errorf("翻訳呼び出しに失敗しました: %w", err)
	}

	translated := sanitizeReply(raw)
	if translated == "" {
		return "", fmt.Errorf("翻訳応答が空でした")
	}

	t.memo.Set(text, translated, cache.DefaultExpiration)
	return translated, nil
}

// TranslateAll は文ごとの翻訳を並列に投げつつ、結果はインデックスで書き戻して
// 入力順序を保ちます。1文の失敗はその文の原文フォールバックに閉じ込められ、
// 兄弟の文を中断させないのだ。
func (t *GeminiTranslator) TranslateAll(ctx context.Context, sentences []string) []string {
	results := make([]string, len(sentences))
	var eg errgroup.Group

	for i, sentence := range sentences {
		i, sentence := i, sentence // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			if err := t.limiter.Wait(ctx); err != nil {
				slog.Warn("レート待機が打ち切られたので原文のまま進めるのだ", "index", i, "error", err)
				results[i] = sentence
				return nil
			}

			translated, err := t.Translate(ctx, sentence)
			if err != nil {
				slog.Warn("文の翻訳に失敗したので原文のまま進めるのだ", "index", i, "error", err)
				results[i] = sentence
				return nil
			}

			results[i] = translated
			return nil
		})
	}

	// 各ゴルーチンは決してエラーを返さないので、ここは同期のためだけの待機なのだ
	_ = eg.Wait()
	return results
}

// Passthrough は翻訳ケーパビリティが無いときのフォールバック実装です。
// 何もせず原文を返しますが、契約（順序・長さ・無失敗）は完全に満たします。
type Passthrough struct{}

// Translate は原文をそのまま返します。
func (Passthrough) Translate(ctx context.Context, text string) (string, error) {
	return text, nil
}

// TranslateAll は入力のコピーを返します。
func (Passthrough) TranslateAll(ctx context.Context, sentences []string) []string {
	results := make([]string, len(sentences))
	copy(results, sentences)
	return results
}

// sanitizeReply はモデルが付けがちな囲いや前後の空白を取り除くのだ。
func sanitizeReply(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
