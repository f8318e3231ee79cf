package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel      = "gemini-3-flash-preview"
	DefaultTargetLang = "简体中文"
	DefaultOutputDir  = "output/panels"         // 1行=1ファイルモードの保存先なのだ
	DefaultPageFile   = "output/comic_page.png" // 単一ページモードの保存先なのだ

	DefaultTitle            = "缤纷动漫课堂"
	DefaultGridRows         = 2
	DefaultGridCols         = 2
	DefaultTranslateTimeout = 20 * time.Second
	DefaultRateInterval     = 500 * time.Millisecond
	DefaultCacheTTL         = 30 * time.Minute
)

// Config はアプリケーション全体の環境設定（APIキーやモデル指定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	TargetLang   string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// GEMINI_API_KEY が空でもエラーにはしない。翻訳と検出がパススルーに縮退するだけなのだ。
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		TargetLang:   envutil.GetEnv("COMIC_TARGET_LANG", DefaultTargetLang),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Story     string // 位置引数で渡された物語テキスト
	StoryFile string // --file（'-'で標準入力なのだ）
	Demo      bool   // --demo: 同梱サンプルを使う

	// 出力関連
	Output     string // --output: ディレクトリ（通常）またはファイルパス（単一ページ）
	Title      string // --title
	SinglePage bool   // --single-page: グリッドをまとめて1枚に描く
	GridRows   int    // --rows
	GridCols   int    // --cols

	// 描画関連
	FontPath string // --font: 対象スクリプトを描けるフォント
	TextOnly bool   // --text-only: 描画ケーパビリティを使わずテキスト成果物にする

	// 実行制御
	TranslateTimeout time.Duration // --translate-timeout
}
