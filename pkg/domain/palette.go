package domain

import "image/color"

// StyleTag は台詞の演出ジャンルを表す列挙値です。
type StyleTag string

const (
	StyleAction    StyleTag = "action"    // 熱血・アクション調
	StyleCute      StyleTag = "cute"      // ほんわか・萌え調
	StyleNarration StyleTag = "narration" // 地の文・ナレーション
)

// DefaultStylePalette は演出スタイルの固定ローテーション順序なのだ。
// 割り当ての再現性はこの並びに依存しているので、並べ替えてはいけないのだ。
var DefaultStylePalette = []StyleTag{StyleAction, StyleCute, StyleNarration}

// PanelColor はパネル背景に使う名前付きの色です。
type PanelColor struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// RGBA は描画ライブラリ向けの不透明色に変換します。
func (c PanelColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// DefaultColorPalette はパネル背景の固定パレットです。
var DefaultColorPalette = []PanelColor{
	{Name: "珊瑚红", R: 247, G: 106, B: 108},
	{Name: "向日葵黄", R: 255, G: 203, B: 71},
	{Name: "天空蓝", R: 93, G: 179, B: 255},
	{Name: "嫩芽绿", R: 138, G: 201, B: 87},
}

// ColorAt は文のインデックスから背景色を決定論的に選びます。
// 同じインデックスは何度実行しても同じ色になります。
func ColorAt(palette []PanelColor, index int) PanelColor {
	if len(palette) == 0 {
		palette = DefaultColorPalette
	}
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}
