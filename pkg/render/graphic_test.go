package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/kk8888888/Generator-Comic/pkg/domain"
)

func TestGraphicRenderer_PanelIsValidPNG(t *testing.T) {
	r := NewGraphicRenderer("缤纷动漫课堂", nil, nil)

	art, err := r.RenderPanel(samplePanel())
	if err != nil {
		t.Fatalf("RenderPanel が失敗したのだ: %v", err)
	}
	if art.MimeType != "image/png" {
		t.Errorf("MIMEタイプが違うのだ: %s", art.MimeType)
	}
	if r.Ext() != ".png" {
		t.Errorf("拡張子が違うのだ: %s", r.Ext())
	}

	img, err := png.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("PNGとしてデコードできないのだ: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != panelSize || b.Dy() != panelSize {
		t.Errorf("キャンバス寸法が %dx%d なのだ。期待は %dx%d", b.Dx(), b.Dy(), panelSize, panelSize)
	}

	// 枠線の内側は背景色で塗られているはずなのだ
	want := samplePanel().Background.RGBA()
	got := img.At(b.Dx()/2, borderWidth+4)
	gr, gg, gb, _ := got.RGBA()
	wr, wg, wb, _ := want.RGBA()
	if gr != wr || gg != wg || gb != wb {
		t.Errorf("背景色が一致しないのだ: got %v, want %v", got, want)
	}
}

func TestGraphicRenderer_PageDimensions(t *testing.T) {
	r := NewGraphicRenderer("测试", nil, nil)
	page := domain.Page{
		Number: 1,
		Rows:   2,
		Cols:   2,
		Panels: []domain.Panel{
			{Row: 0, Col: 0, Background: domain.DefaultColorPalette[0], Line: domain.StyledLine{Index: 0, Style: domain.StyleAction, Speaker: "热血角色", TranslatedText: "一！！"}},
			{Row: 1, Col: 1, Background: domain.DefaultColorPalette[3], Line: domain.StyledLine{Index: 3, Style: domain.StyleAction, Speaker: "热血角色", TranslatedText: "四！！"}},
		},
	}

	art, err := r.RenderPage(page)
	if err != nil {
		t.Fatalf("RenderPage が失敗したのだ: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("PNGとしてデコードできないのだ: %v", err)
	}

	wantW := pageMargin + 2*(pageCell+pageMargin)
	wantH := pageMargin + titleStrip + 2*(pageCell+pageMargin)
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("ページ寸法が %dx%d なのだ。期待は %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestGraphicRenderer_NilFaceFallsBackToDefault(t *testing.T) {
	// フェイス未指定でもパニックせずに組み込みフォントで描けるのだ
	r := NewGraphicRenderer("", nil, nil)
	if _, err := r.RenderPanel(samplePanel()); err != nil {
		t.Fatalf("組み込みフォントへの縮退に失敗したのだ: %v", err)
	}
}

func TestLoadFace_MissingFileFails(t *testing.T) {
	if _, err := LoadFace("testdata/no_such_font.ttf", BodyFontSize); err == nil {
		t.Error("存在しないフォントパスはエラーになるはずなのだ")
	}
}
