package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kk8888888/Generator-Comic/internal/config"
	"github.com/kk8888888/Generator-Comic/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、物語テキストから漫画パネル成果物の生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate [story text]",
	Short: "物語を中国語のアニメ風4コマ漫画に変換するのだ。",
	Long: `任意の言語の物語を中国語へ翻訳し、アニメ風の演出を付けてパネル画像として出力するのだ。
翻訳や描画のケーパビリティが無い環境では、原文パススルーやテキスト成果物に自動で縮退するのだよ。`,
	Args: cobra.MaximumNArgs(1),
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 入力ソースの解決と必須チェック
	if len(args) > 0 {
		opts.Story = args[0]
	}
	if opts.Story == "" && opts.StoryFile == "" && !opts.Demo && !isStdin() {
		return fmt.Errorf("物語（位置引数、--file、--demo のいずれか）を指定してほしいのだ")
	}
	// 引数が何も無くても標準入力が繋がっていればそこから読むのだ
	if opts.Story == "" && opts.StoryFile == "" && !opts.Demo && isStdin() {
		opts.StoryFile = "-"
	}

	// 2. 環境変数から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("漫画生成パイプラインを起動するのだ！",
		"model", cfg.GeminiModel,
		"target_lang", cfg.TargetLang,
		"single_page", opts.SinglePage,
		"output", opts.Output)

	// 3. 実行
	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
