package publisher

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveOutputPath はベースディレクトリとファイル名から最終的な出力パスを作ります。
// gs:// のようなリモート URI はスキームを壊さないように url.JoinPath で結合し、
// それ以外はローカルパスとして扱います。baseDir が空ならファイル名がそのままパスです。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	if baseDir == "" {
		return fileName, nil
	}

	if strings.Contains(baseDir, "://") {
		u, err := url.Parse(baseDir)
		if err != nil {
			return "", fmt.Errorf("無効な出力URIです (%s): %w", baseDir, err)
		}
		u.Path, err = url.JoinPath(u.Path, fileName)
		if err != nil {
			return "", fmt.Errorf("出力パスの結合に失敗しました: %w", err)
		}
		return u.String(), nil
	}

	return filepath.Join(baseDir, fileName), nil
}

// SplitTargetPath は単一ファイル指定（--output がファイルパスのケース）を
// ディレクトリ部とファイル名部に分解するのだ。追加ページの連番付与に使うのだ。
func SplitTargetPath(target string) (dir, name string) {
	if strings.Contains(target, "://") {
		idx := strings.LastIndex(target, "/")
		return target[:idx], target[idx+1:]
	}
	return filepath.Dir(target), filepath.Base(target)
}
