package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kk8888888/Generator-Comic/internal/config"
	"github.com/kk8888888/Generator-Comic/internal/prompt"
	"github.com/kk8888888/Generator-Comic/pkg/detector"
	"github.com/kk8888888/Generator-Comic/pkg/render"
	"github.com/kk8888888/Generator-Comic/pkg/translator"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"golang.org/x/image/font"
	"google.golang.org/genai"
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// TextCapability は gemini クライアントを「プロンプト→テキスト」の最小契約へ絞るアダプターなのだ。
// translator.TextGenerator と detector.TextGenerator の両方を満たすのだ。
type TextCapability struct {
	client gemini.GenerativeModel
	model  string
}

func (g *TextCapability) Generate(ctx context.Context, promptText string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, promptText, g.model)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// ProbeAICapability は翻訳・検出の土台となる生成クライアントを一度だけ初期化するのだ。
// APIキーが無い、あるいは初期化に失敗した場合は nil を返し、呼び出し側が
// フォールバックバリアントを選ぶ。失敗はエラーではなく縮退なのだ。
func ProbeAICapability(ctx context.Context, cfg *config.Config) *TextCapability {
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY が未設定なので翻訳・検出はフォールバックで動くのだ")
		return nil
	}
	client, err := InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		slog.Warn("AIクライアントの初期化に失敗したので翻訳・検出はフォールバックで動くのだ", "error", err)
		return nil
	}
	return &TextCapability{client: client, model: cfg.GeminiModel}
}

// BuildTranslator は翻訳バリアントを選んで構築するのだ。
func BuildTranslator(gen *TextCapability, cfg *config.Config, prompts *prompt.Builder) translator.Translator {
	if gen == nil {
		return translator.Passthrough{}
	}

	timeout := cfg.Options.TranslateTimeout
	if timeout <= 0 {
		timeout = config.DefaultTranslateTimeout
	}

	return translator.NewGeminiTranslator(gen, prompts, translator.Options{
		CallTimeout:  timeout,
		RateInterval: config.DefaultRateInterval,
		CacheTTL:     config.DefaultCacheTTL,
	})
}

// BuildDetector は言語検出バリアントを選んで構築するのだ。
func BuildDetector(gen *TextCapability, prompts *prompt.Builder) detector.Detector {
	if gen == nil {
		return &detector.StaticDetector{Code: detector.FallbackLanguage}
	}
	return detector.NewGeminiDetector(gen, prompts)
}

// BuildRenderer は描画ケーパビリティを一度だけ判定してレンダラを選ぶのだ。
// --text-only が指定されていればテキスト成果物へ縮退し、
// フォント解決の失敗は組み込みフォントへの縮退（警告のみ）になるのだ。
func BuildRenderer(opts config.GenerateOptions) render.PanelRenderer {
	if opts.TextOnly {
		slog.Warn("描画ケーパビリティを使わないのでテキスト成果物に縮退するのだ")
		return render.NewTextRenderer(opts.Title)
	}

	var bodyFace, titleFace font.Face
	if opts.FontPath != "" {
		var err error
		bodyFace, err = render.LoadFace(opts.FontPath, render.BodyFontSize)
		if err != nil {
			slog.Warn("フォントの読み込みに失敗したので組み込みフォントに縮退するのだ",
				"font", opts.FontPath, "error", err)
			bodyFace = nil
		} else if titleFace, err = render.LoadFace(opts.FontPath, render.TitleFontSize); err != nil {
			titleFace = nil
		}
	} else {
		slog.Warn("フォント未指定なので組み込みフォントで描くのだ。中国語の字形は欠ける可能性があるのだ")
	}

	return render.NewGraphicRenderer(opts.Title, bodyFace, titleFace)
}
