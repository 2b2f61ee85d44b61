package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-asset-kit/pkg/asset"
	"github.com/shouni/go-asset-kit/pkg/domain"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
	Title     string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	CatalogPath string   // 生成された catalog.md のパス
	ImagePaths  []string // 保存された全画像のパスリスト
}

// AssetPublisher は completed のアセット画像とカタログをローカルに書き出します。
type AssetPublisher struct{}

// NewAssetPublisher は AssetPublisher を生成します。
func NewAssetPublisher() *AssetPublisher {
	return &AssetPublisher{}
}

// Publish は画像を <OutputDir>/images に、カタログを <OutputDir>/catalog.md に保存します。
func (p *AssetPublisher) Publish(ctx context.Context, records []domain.AssetRecord, opts Options) (*PublishResult, error) {
	imageDir := filepath.Join(opts.OutputDir, asset.DefaultImageDir)
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("画像ディレクトリの作成に失敗しました: %w", err)
	}

	result := &PublishResult{}
	relPaths := make(map[string]string)
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if r.Status != domain.StatusCompleted || len(r.ImageData) == 0 {
			continue
		}

		name := asset.ImageFileName(r)
		path, err := asset.ResolveOutputPath(imageDir, name)
		if err != nil {
			return result, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		if err := os.WriteFile(path, r.ImageData, 0o644); err != nil {
			return result, fmt.Errorf("画像 '%s' の保存に失敗しました: %w", path, err)
		}
		result.ImagePaths = append(result.ImagePaths, path)
		relPaths[r.ID] = filepath.ToSlash(filepath.Join(asset.DefaultImageDir, name))
	}

	catalogPath := filepath.Join(opts.OutputDir, asset.DefaultCatalogName)
	md := BuildCatalog(opts.Title, records, relPaths)
	if err := os.WriteFile(catalogPath, []byte(md), 0o644); err != nil {
		return result, fmt.Errorf("カタログ '%s' の保存に失敗しました: %w", catalogPath, err)
	}
	result.CatalogPath = catalogPath

	slog.InfoContext(ctx, "Assets published", "images", len(result.ImagePaths), "catalog", catalogPath)
	return result, nil
}
