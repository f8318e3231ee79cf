package cmd

import (
	"fmt"

	"github.com/kk8888888/Generator-Comic/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は addAppFlags で各フラグに紐付けられる実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.StoryFile, "file", "f", "", "物語テキストのファイルパス（'-'で標準入力なのだ）。")
	rootCmd.PersistentFlags().BoolVar(&opts.Demo, "demo", false, "同梱のサンプル物語を使うのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "出力先ディレクトリ（通常モード）またはファイルパス（--single-page時）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Title, "title", "t", config.DefaultTitle, "成果物に重ねるページタイトルなのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.SinglePage, "single-page", false, "グリッドをまとめて1枚のページに描くのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.GridRows, "rows", config.DefaultGridRows, "ページグリッドの行数なのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.GridCols, "cols", config.DefaultGridCols, "ページグリッドの列数なのだ。")

	// --- 描画設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.FontPath, "font", "", "対象スクリプト（中国語）を描けるTTF/OTFのパスなのだ。未指定なら組み込みフォントなのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.TextOnly, "text-only", false, "描画を使わずプレーンテキスト成果物を出すのだ。")

	// --- 実行制御 ---
	rootCmd.PersistentFlags().DurationVar(&opts.TranslateTimeout, "translate-timeout", config.DefaultTranslateTimeout, "1文あたりの翻訳呼び出しの上限時間なのだ。")
}

// preRunAppE は、コマンド実行前の軽い整合性チェックなのだ。
// GEMINI_API_KEY はあえて必須にしない。無ければ翻訳がパススルーに縮退するだけで、
// それはエラーではなく仕様なのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.GridRows < 1 || opts.GridCols < 1 {
		return fmt.Errorf("--rows と --cols は1以上を指定してほしいのだ")
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"comic-gen",
		addAppFlags,
		preRunAppE,
		generateCmd,
	)
}
