package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kk8888888/Generator-Comic/examples"
	"github.com/kk8888888/Generator-Comic/internal/builder"
	"github.com/kk8888888/Generator-Comic/internal/config"
	"github.com/kk8888888/Generator-Comic/internal/prompt"
	"github.com/kk8888888/Generator-Comic/pkg/domain"
	"github.com/kk8888888/Generator-Comic/pkg/layout"
	"github.com/kk8888888/Generator-Comic/pkg/publisher"
	"github.com/kk8888888/Generator-Comic/pkg/render"
	"github.com/kk8888888/Generator-Comic/pkg/splitter"
	"github.com/kk8888888/Generator-Comic/pkg/stylizer"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// Execute は物語テキストから漫画パネル成果物までの全工程を実行するのだ。
// 工程は Split → Detect → Translate → Stylize → Layout → Render の一方通行で、
// 縮退した工程もそのまま次へ進む。止まるのは入力が読めないか出力が書けないときだけなのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	return run(ctx, appCtx)
}

// run は構築済みの AppContext に対してパイプライン本体を実行するのだ。
// 依存がすべて注入済みなので、テストではここを直接叩けるのだよ。
func run(ctx context.Context, appCtx *builder.AppContext) error {
	opts := appCtx.Options

	// --- Init: 物語の読み込み（失敗は回復不能） ---
	story, err := readStory(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("物語の読み込みに失敗したのだ: %w", err)
	}

	// --- Split ---
	sentences := splitter.Split(story.Text)
	slog.Info("物語を文に分解したのだ", "sentences", len(sentences))
	if len(sentences) == 0 {
		slog.Info("文が1つも無いので成果物なしで正常終了するのだ")
		return nil
	}

	// --- Detect: 参考情報としてログに出すだけで、下流は常に中国語を目指すのだ ---
	lang := appCtx.Detector.Detect(ctx, story.Text)
	slog.Info("元言語を判定したのだ", "language", lang)

	// --- Translate: 文ごとに独立、失敗した文は原文のまま進むのだ ---
	translated := appCtx.Translator.TranslateAll(ctx, sentences)

	// --- Stylize ---
	lines := stylizer.New(domain.DefaultStylePalette).Stylize(sentences, translated)

	// --- Layout & Render ---
	engine := layout.NewEngine(opts.GridRows, opts.GridCols, domain.DefaultColorPalette)
	artifacts, baseDir, err := renderArtifacts(appCtx.Renderer, engine, lines, opts)
	if err != nil {
		return err
	}

	// --- Publish（失敗は回復不能） ---
	pub := publisher.NewComicPublisher(appCtx.Writer)
	paths, err := pub.Publish(ctx, baseDir, artifacts)
	if err != nil {
		return err
	}

	slog.Info("漫画の生成が完了したのだ！", "artifacts", len(paths), "dir", baseDir)
	return nil
}

// renderArtifacts はモードに応じてパネル群を成果物列へ変換するのだ。
// 通常モードは「1行=1ファイル」、--single-page はグリッドをページ単位で1枚に描き、
// 容量を超えた行は追加ページへ繰り越すのだ。
func renderArtifacts(r render.PanelRenderer, engine *layout.Engine, lines []domain.StyledLine, opts config.GenerateOptions) ([]render.Artifact, string, error) {
	if opts.SinglePage {
		target := opts.Output
		if target == "" {
			target = config.DefaultPageFile
		}
		baseDir, fileName := publisher.SplitTargetPath(target)
		stem := strings.TrimSuffix(fileName, pathExt(fileName))

		pages := engine.Paginate(lines)
		artifacts := make([]render.Artifact, 0, len(pages))
		for _, page := range pages {
			art, err := r.RenderPage(page)
			if err != nil {
				return nil, "", fmt.Errorf("ページ %d の描画に失敗したのだ: %w", page.Number, err)
			}
			if page.Number == 1 {
				art.Name = stem + r.Ext()
			} else {
				// 繰り越したページは連番を付けて同じ場所に並べるのだ
				art.Name = fmt.Sprintf("%s_p%d%s", stem, page.Number, r.Ext())
			}
			artifacts = append(artifacts, art)
		}
		return artifacts, baseDir, nil
	}

	baseDir := opts.Output
	if baseDir == "" {
		baseDir = config.DefaultOutputDir
	}

	panels := engine.PerPanel(lines)
	artifacts := make([]render.Artifact, 0, len(panels))
	for _, panel := range panels {
		art, err := r.RenderPanel(panel)
		if err != nil {
			return nil, "", fmt.Errorf("パネル %d の描画に失敗したのだ: %w", panel.Line.Index, err)
		}
		art.Name = fmt.Sprintf("panel_%d%s", panel.Line.Index, r.Ext())
		artifacts = append(artifacts, art)
	}
	return artifacts, baseDir, nil
}

// readStory は --demo / --file / 位置引数の優先順位で物語を手に入れるのだ。
func readStory(ctx context.Context, appCtx *builder.AppContext) (domain.Story, error) {
	opts := appCtx.Options
	story := domain.Story{Title: opts.Title}

	switch {
	case opts.Demo:
		story.Text = examples.DemoStory
	case opts.StoryFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return story, fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		story.Text = string(data)
	case opts.StoryFile != "":
		rc, err := appCtx.Reader.Open(ctx, opts.StoryFile)
		if err != nil {
			return story, fmt.Errorf("物語ファイル '%s' が開けないのだ: %w", opts.StoryFile, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return story, fmt.Errorf("物語ファイル '%s' の読み込みに失敗したのだ: %w", opts.StoryFile, err)
		}
		story.Text = string(data)
	default:
		story.Text = opts.Story
	}

	return story, nil
}

// setupAppContext は設定とケーパビリティ判定から共有コンポーネントを初期化して返すのだ。
// 判定はこの一度きりで、実行中にバリアントが切り替わることはないのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	prompts, err := prompt.NewBuilder(cfg.TargetLang)
	if err != nil {
		return nil, err
	}

	gen := builder.ProbeAICapability(ctx, cfg)

	return &builder.AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		Reader:     reader,
		Writer:     writer,
		Detector:   builder.BuildDetector(gen, prompts),
		Translator: builder.BuildTranslator(gen, cfg, prompts),
		Renderer:   builder.BuildRenderer(cfg.Options),
	}, nil
}

// pathExt は最後のドット以降を返すのだ。filepath.Ext 相当だが gs:// 混じりでも安全なのだ。
func pathExt(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx:]
	}
	return ""
}
