package style

import (
	"github.com/shouni/go-asset-kit/pkg/domain"
)

// Descriptor はスタイルごとの生成パラメータです。初期化後は変更しません。
type Descriptor struct {
	ID                   domain.Style       `json:"id"`
	Name                 string             `json:"name"`
	LocalizedName        string             `json:"nameKo"`
	Description          string             `json:"description"`
	LocalizedDescription string             `json:"descriptionKo"`
	Category             string             `json:"category"`
	PromptPrefix         string             `json:"promptPrefix"`
	AspectRatio          domain.AspectRatio `json:"aspectRatio"`
	Examples             []string           `json:"examples"`
	Tags                 []string           `json:"tags"`
}

// Category はスタイルの表示用グループです。
type Category struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	LocalizedName string         `json:"nameKo"`
	Styles        []domain.Style `json:"styles"`
}

func (d Descriptor) clone() Descriptor {
	d.Examples = append([]string(nil), d.Examples...)
	d.Tags = append([]string(nil), d.Tags...)
	return d
}
