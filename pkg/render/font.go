package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// フォントサイズの既定値なのだ。タイトルは本文より一回り大きくするのだ。
const (
	BodyFontSize  = 22
	TitleFontSize = 30
)

// LoadFace は TTF/OTF ファイルを読み込んでフォントフェイスを返します。
// 対象スクリプト（中国語）を描けるフォントをユーザーが指定する想定です。
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("フォントファイルの読み込みに失敗しました (%s): %w", path, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("フォントの解析に失敗しました (%s): %w", path, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("フォントフェイスの生成に失敗しました: %w", err)
	}
	return face, nil
}

// DefaultFace は組み込みのビットマップフォントを返します。
// CJK グリフは持っていないので、中国語を描く場合の画質は保証されないのだ。
// それでも実行そのものは止めずに描き切るのだ。
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
