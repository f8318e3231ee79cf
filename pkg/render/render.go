// Package render はパネル記述子を成果物（PNG またはプレーンテキスト）へ変換します。
// どちらのバリアントを使うかは起動時のケーパビリティ判定で一度だけ決まり、
// 同一実行内で混在することはありません。
package render

import "github.com/kk8888888/Generator-Comic/pkg/domain"

// Artifact はレンダリング済みの成果物1つ分です。Name は呼び出し側が確定させます。
type Artifact struct {
	Name     string
	Data     []byte
	MimeType string
}

// PanelRenderer はパネル／ページを成果物へ変換するインターフェースです。
// GraphicRenderer と TextRenderer が同じ契約を実装するので、
// 下流はどちらが動いているかを知らなくてよいのだ。
type PanelRenderer interface {
	// RenderPanel は1コマを単独の成果物に変換します。
	RenderPanel(panel domain.Panel) (Artifact, error)
	// RenderPage は1ページ（グリッド）をまとめて1つの成果物に変換します。
	RenderPage(page domain.Page) (Artifact, error)
	// Ext はこのレンダラが生成するファイルの拡張子（例: ".png"）を返します。
	Ext() string
}
