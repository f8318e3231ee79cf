package translator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// identityPrompter はプロンプトとして原文をそのまま返すスタブなのだ。
type identityPrompter struct{}

func (identityPrompter) TranslatePrompt(text string) (string, error) { return text, nil }

// mapGen は入力ごとの応答を引くスタブ生成器なのだ。並列呼び出しに備えて数を数える。
type mapGen struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	calls   int
}

func (m *mapGen) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}
	if reply, ok := m.replies[prompt]; ok {
		return reply, nil
	}
	return "", errors.New("unknown input")
}

func (m *mapGen) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func fastOptions() Options {
	return Options{
		CallTimeout:  time.Second,
		RateInterval: time.Millisecond,
		CacheTTL:     time.Minute,
	}
}

func TestTranslateAll_PreservesOrderAndLength(t *testing.T) {
	gen := &mapGen{replies: map[string]string{
		"one.":   "一。",
		"two!":   "二！",
		"three?": "三？",
	}}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	in := []string{"one.", "two!", "three?"}
	got := tr.TranslateAll(context.Background(), in)

	want := []string{"一。", "二！", "三？"}
	if len(got) != len(in) {
		t.Fatalf("出力の長さが入力と違うのだ: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTranslateAll_FailureIsIsolatedPerSentence(t *testing.T) {
	gen := &mapGen{replies: map[string]string{
		"ok one.": "好一。",
		"ok two.": "好二。",
	}}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	in := []string{"ok one.", "broken sentence", "ok two."}
	got := tr.TranslateAll(context.Background(), in)

	if got[0] != "好一。" || got[2] != "好二。" {
		t.Errorf("成功した文まで巻き添えになっているのだ: %v", got)
	}
	if got[1] != "broken sentence" {
		t.Errorf("失敗した文は原文のまま残るはずなのだ: %q", got[1])
	}
}

func TestTranslateAll_TotalOutageFallsBackToOriginals(t *testing.T) {
	gen := &mapGen{err: errors.New("capability unavailable")}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	in := []string{"a.", "b!", "c?"}
	got := tr.TranslateAll(context.Background(), in)

	for i := range in {
		if got[i] != in[i] {
			t.Errorf("全滅時は translatedText == originalText のはずなのだ: index %d = %q", i, got[i])
		}
	}
}

func TestTranslate_MemoizesRepeatedSentences(t *testing.T) {
	gen := &mapGen{replies: map[string]string{"same.": "相同。"}}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := tr.Translate(ctx, "same.")
		if err != nil {
			t.Fatalf("翻訳に失敗したのだ: %v", err)
		}
		if got != "相同。" {
			t.Fatalf("訳文が違うのだ: %q", got)
		}
	}

	if gen.callCount() != 1 {
		t.Errorf("同じ文は一度しか呼ばれないはずなのだ: calls=%d", gen.callCount())
	}
}

func TestTranslate_StripsCodeFences(t *testing.T) {
	gen := &mapGen{replies: map[string]string{"x.": "```\n译文。\n```"}}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	got, err := tr.Translate(context.Background(), "x.")
	if err != nil {
		t.Fatalf("翻訳に失敗したのだ: %v", err)
	}
	if got != "译文。" || strings.Contains(got, "```") {
		t.Errorf("囲いが剥がれていないのだ: %q", got)
	}
}

func TestTranslate_EmptyReplyIsAnError(t *testing.T) {
	gen := &mapGen{replies: map[string]string{"x.": "   "}}
	tr := NewGeminiTranslator(gen, identityPrompter{}, fastOptions())

	if _, err := tr.Translate(context.Background(), "x."); err == nil {
		t.Error("空応答はエラーになるはずなのだ")
	}
}

func TestPassthrough(t *testing.T) {
	var tr Translator = Passthrough{}

	got, err := tr.Translate(context.Background(), "そのまま")
	if err != nil || got != "そのまま" {
		t.Errorf("パススルーは原文を返すはずなのだ: %q, %v", got, err)
	}

	in := []string{"a", "b"}
	out := tr.TranslateAll(context.Background(), in)
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("パススルーの一括翻訳が恒等写像になっていないのだ: %v", out)
	}

	// コピーを返すので呼び出し側のスライスを書き換えても安全なのだ
	out[0] = "mutated"
	if in[0] != "a" {
		t.Error("入力スライスまで書き換わっているのだ")
	}
}
