package builder

import (
	"github.com/kk8888888/Generator-Comic/internal/config"
	"github.com/kk8888888/Generator-Comic/pkg/detector"
	"github.com/kk8888888/Generator-Comic/pkg/render"
	"github.com/kk8888888/Generator-Comic/pkg/translator"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// 起動時のケーパビリティ判定で選ばれたバリアントがここに束ねられ、
// 実行中に入れ替わることはないのだ。
type AppContext struct {
	Config     *config.Config         // 環境変数から読み込まれたグローバル設定
	Options    config.GenerateOptions // コマンドラインから渡された実行時の設定
	Reader     remoteio.InputReader   // 物語ファイルの読み込みに使う入力元
	Writer     remoteio.OutputWriter  // 成果物を保存するための出力先
	Detector   detector.Detector      // 言語検出（実体 or 固定コードへの縮退）
	Translator translator.Translator  // 翻訳（実体 or パススルーへの縮退）
	Renderer   render.PanelRenderer   // 描画（ビットマップ or テキストへの縮退）
}
