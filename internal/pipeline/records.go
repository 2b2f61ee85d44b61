package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

// recordsFile はアセット一覧ファイルの形式なのだ。
type recordsFile struct {
	GameName string               `json:"gameName,omitempty"`
	Genre    string               `json:"genre,omitempty"`
	ArtStyle string               `json:"artStyle,omitempty"`
	Assets   []domain.AssetRecord `json:"assets"`
}

func readRecords(path string) (*recordsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("アセット一覧 '%s' の読み込みに失敗しました: %w", path, err)
	}
	var f recordsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("アセット一覧 '%s' のデコードに失敗しました: %w", path, err)
	}
	return &f, nil
}

func writeRecords(path string, f *recordsFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("アセット一覧のエンコードに失敗しました: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("アセット一覧 '%s' の書き込みに失敗しました: %w", path, err)
	}
	return nil
}
