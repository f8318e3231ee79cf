// Package publisher はレンダリング済み成果物の永続化を担います。
// 書き込み先はローカルパスでも gs:// でもよく、違いは remoteio が吸収します。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/kk8888888/Generator-Comic/pkg/render"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
)

// ComicPublisher は成果物をパネル単位のファイルとして書き出します。
type ComicPublisher struct {
	writer remoteio.OutputWriter
}

// NewComicPublisher は ComicPublisher を生成します。
func NewComicPublisher(writer remoteio.OutputWriter) *ComicPublisher {
	return &ComicPublisher{writer: writer}
}

// Publish はすべての成果物を baseDir 配下へ書き出し、書き込んだパスの一覧を返します。
// ファイル同士に順序依存は無いので書き込みは並列なのだ。
// 1つでも書けなければ実行全体の失敗（回復不能）として扱います。
func (p *ComicPublisher) Publish(ctx context.Context, baseDir string, artifacts []render.Artifact) ([]string, error) {
	paths := make([]string, len(artifacts))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, art := range artifacts {
		i, art := i, art

		fullPath, err := ResolveOutputPath(baseDir, art.Name)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		paths[i] = fullPath

		eg.Go(func() error {
			if err := p.writer.Write(egCtx, fullPath, bytes.NewReader(art.Data), art.MimeType); err != nil {
				return fmt.Errorf("成果物の書き込みに失敗しました %s: %w", fullPath, err)
			}
			slog.Debug("成果物を書き出したのだ", "path", fullPath, "bytes", len(art.Data))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
