package domain

// Style はアセットの視覚スタイルを表す閉じた列挙型です。
type Style string

const (
	StyleIcon        Style = "icon"
	StyleCharacter   Style = "character"
	StyleItem        Style = "item"
	StyleWeapon      Style = "weapon"
	StyleArmor       Style = "armor"
	StyleEnvironment Style = "environment"
	StyleUIElement   Style = "ui_element"
	StyleTile        Style = "tile"
	StylePixelArt    Style = "pixel_art"
	StyleVFX         Style = "vfx"
	StyleCreature    Style = "creature"
	StyleVehicle     Style = "vehicle"
	StyleBuilding    Style = "building"
	StyleProp        Style = "prop"
	StylePortrait    Style = "portrait"
	StyleLogo        Style = "logo"
	StyleTexture     Style = "texture"
	StyleSpritesheet Style = "spritesheet"

	// DefaultStyle は不正なスタイル値の置き換え先です。
	DefaultStyle = StyleIcon
)

// AllStyles は定義済みスタイルを宣言順で返します。
var AllStyles = []Style{
	StyleIcon, StyleCharacter, StyleItem, StyleWeapon, StyleArmor, StyleEnvironment,
	StyleUIElement, StyleTile, StylePixelArt, StyleVFX, StyleCreature, StyleVehicle,
	StyleBuilding, StyleProp, StylePortrait, StyleLogo, StyleTexture, StyleSpritesheet,
}

// Priority は表示上のグルーピングにのみ使う優先度です。処理順には影響しません。
type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"

	DefaultPriority = PriorityRecommended
)

// AspectRatio は画像生成 API が受け付けるアスペクト比です。
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectTall      AspectRatio = "9:16"
	AspectLandscape AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "3:4"

	DefaultAspectRatio = AspectSquare
)

// Status はアセットのライフサイクル状態です。
//
//	pending -> generating -> completed | failed
//	failed -> generating (retry), completed -> generating (regenerate)
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// AssetRecord は生成対象となる1つのビジュアルアセットです。
type AssetRecord struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	LocalizedName  string      `json:"nameKo"`
	Description    string      `json:"description,omitempty"`
	Category       string      `json:"category,omitempty"`
	Style          Style       `json:"style"`
	Prompt         string      `json:"prompt"`
	EnhancedPrompt string      `json:"enhancedPrompt,omitempty"`
	Priority       Priority    `json:"priority"`
	AspectRatio    AspectRatio `json:"aspectRatio"`
	Status         Status      `json:"status"`
	ImageData      []byte      `json:"imageData,omitempty"`
	MimeType       string      `json:"mimeType,omitempty"`
}

// Label は進捗表示用のラベルを返します。ローカライズ名を優先します。
func (r AssetRecord) Label() string {
	if r.LocalizedName != "" {
		return r.LocalizedName
	}
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Clone は ImageData を含めた防御的コピーを返します。
func (r AssetRecord) Clone() AssetRecord {
	c := r
	if r.ImageData != nil {
		c.ImageData = make([]byte, len(r.ImageData))
		copy(c.ImageData, r.ImageData)
	}
	return c
}
