package asset

import (
	"fmt"

	"github.com/shouni/go-utils/urlpath"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

const (
	// DefaultImageDir は生成された画像を格納するデフォルトのディレクトリ名です。
	DefaultImageDir = "images"
	// DefaultRecordsJSON はアセット一覧のデフォルト JSON ファイル名です。
	DefaultRecordsJSON = "assets.json"
	// DefaultCatalogName はアセットカタログのデフォルト Markdown ファイル名です。
	DefaultCatalogName = "catalog.md"
	// DefaultGalleryJSON はギャラリー履歴のデフォルト JSON ファイル名です。
	DefaultGalleryJSON = "gallery.json"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// ImageFileName はレコードの画像ファイル名を返します。
// 例: style=icon, id=asset-1, image/png -> "icon-asset-1.png"
func ImageFileName(r domain.AssetRecord) string {
	return fmt.Sprintf("%s-%s%s", r.Style, r.ID, Extension(r.MimeType))
}

// Extension は MIME タイプに対応する拡張子を返します。不明な場合は .png です。
func Extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
