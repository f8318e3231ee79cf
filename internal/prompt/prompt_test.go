package prompt

import (
	"strings"
	"testing"
)

func TestBuilder_TranslatePrompt(t *testing.T) {
	b, err := NewBuilder("简体中文")
	if err != nil {
		t.Fatalf("Builderの生成に失敗したのだ: %v", err)
	}

	got, err := b.TranslatePrompt("Doraemon teaches AI.")
	if err != nil {
		t.Fatalf("組み立てに失敗したのだ: %v", err)
	}
	if !strings.Contains(got, "Doraemon teaches AI.") {
		t.Error("原文が埋め込まれていないのだ")
	}
	if !strings.Contains(got, "简体中文") {
		t.Error("翻訳先言語が埋め込まれていないのだ")
	}
}

func TestBuilder_DetectPrompt(t *testing.T) {
	b, err := NewBuilder("简体中文")
	if err != nil {
		t.Fatalf("Builderの生成に失敗したのだ: %v", err)
	}

	got, err := b.DetectPrompt("Bonjour tout le monde.")
	if err != nil {
		t.Fatalf("組み立てに失敗したのだ: %v", err)
	}
	if !strings.Contains(got, "Bonjour tout le monde.") {
		t.Error("判定対象テキストが埋め込まれていないのだ")
	}
	if !strings.Contains(got, "639-1") {
		t.Error("出力形式の制約が欠けているのだ")
	}
}
