package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kk8888888/Generator-Comic/pkg/domain"
)

func samplePanel() domain.Panel {
	return domain.Panel{
		Row:        0,
		Col:        0,
		Background: domain.DefaultColorPalette[0],
		Line: domain.StyledLine{
			Index:          0,
			OriginalText:   "Doraemon teaches AI.",
			TranslatedText: "哆啦A梦教AI！！",
			Style:          domain.StyleAction,
			Speaker:        "热血角色",
		},
	}
}

func TestTextRenderer_PanelContainsLogicalContent(t *testing.T) {
	r := NewTextRenderer("缤纷动漫课堂")
	art, err := r.RenderPanel(samplePanel())
	if err != nil {
		t.Fatalf("RenderPanel が失敗したのだ: %v", err)
	}

	out := string(art.Data)
	for _, want := range []string{"action", "热血角色", "哆啦A梦教AI！！", "Doraemon teaches AI.", "珊瑚红", "第1幕"} {
		if !strings.Contains(out, want) {
			t.Errorf("出力に %q が含まれていないのだ:\n%s", want, out)
		}
	}
	if art.MimeType != "text/plain; charset=utf-8" {
		t.Errorf("MIMEタイプが違うのだ: %s", art.MimeType)
	}
	if r.Ext() != ".txt" {
		t.Errorf("拡張子が違うのだ: %s", r.Ext())
	}
}

func TestTextRenderer_IsIdempotent(t *testing.T) {
	r := NewTextRenderer("缤纷动漫课堂")

	first, err := r.RenderPanel(samplePanel())
	if err != nil {
		t.Fatalf("1回目のレンダリングが失敗したのだ: %v", err)
	}
	second, err := r.RenderPanel(samplePanel())
	if err != nil {
		t.Fatalf("2回目のレンダリングが失敗したのだ: %v", err)
	}

	if !bytes.Equal(first.Data, second.Data) {
		t.Error("同じ入力からバイト同一の成果物が得られないのだ")
	}
}

func TestTextRenderer_PageListsAllPanels(t *testing.T) {
	page := domain.Page{
		Number: 1,
		Rows:   2,
		Cols:   2,
		Panels: []domain.Panel{
			{Row: 0, Col: 0, Background: domain.DefaultColorPalette[0], Line: domain.StyledLine{Index: 0, TranslatedText: "一！！", Style: domain.StyleAction, Speaker: "热血角色"}},
			{Row: 0, Col: 1, Background: domain.DefaultColorPalette[1], Line: domain.StyledLine{Index: 1, TranslatedText: "二～♪", Style: domain.StyleCute, Speaker: "萌系角色"}},
			{Row: 1, Col: 0, Background: domain.DefaultColorPalette[2], Line: domain.StyledLine{Index: 2, TranslatedText: "（三）", Style: domain.StyleNarration, Speaker: "旁白"}},
		},
	}

	art, err := NewTextRenderer("测试").RenderPage(page)
	if err != nil {
		t.Fatalf("RenderPage が失敗したのだ: %v", err)
	}

	out := string(art.Data)
	for _, want := range []string{"[0,0]", "[0,1]", "[1,0]", "一！！", "二～♪", "（三）"} {
		if !strings.Contains(out, want) {
			t.Errorf("ページ出力に %q が含まれていないのだ", want)
		}
	}
}
