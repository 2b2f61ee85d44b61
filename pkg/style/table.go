package style

import "github.com/shouni/go-asset-kit/pkg/domain"

// builtinDescriptors は組み込みのスタイル表を生成します。
func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID: domain.StyleIcon, Name: "Game Icon", LocalizedName: "게임 아이콘",
			Description: "App icons, skill icons, inventory icons", LocalizedDescription: "앱 아이콘, 스킬 아이콘, 인벤토리 아이콘",
			Category:     "ui",
			PromptPrefix: "game icon design, centered composition, clean edges, vibrant colors, professional game art, icon style,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"health potion", "fire spell", "gold coin", "magic sword"},
			Tags:         []string{"icon", "skill", "ability", "inventory"},
		},
		{
			ID: domain.StyleCharacter, Name: "Character", LocalizedName: "캐릭터",
			Description: "Player characters, NPCs, heroes, villains", LocalizedDescription: "플레이어 캐릭터, NPC, 영웅, 악당",
			Category:     "2d",
			PromptPrefix: "game character design, full body, dynamic pose, detailed art, game ready,",
			AspectRatio:  domain.AspectPortrait,
			Examples:     []string{"warrior knight", "fire mage", "elf archer", "dark assassin"},
			Tags:         []string{"hero", "npc", "player", "avatar"},
		},
		{
			ID: domain.StyleItem, Name: "Item", LocalizedName: "아이템",
			Description: "Consumables, collectibles, treasures", LocalizedDescription: "소모품, 수집품, 보물",
			Category:     "2d",
			PromptPrefix: "game item design, detailed rendering, fantasy style, collectible item,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"healing potion", "magic scroll", "ancient key", "enchanted gem"},
			Tags:         []string{"consumable", "collectible", "treasure", "loot"},
		},
		{
			ID: domain.StyleWeapon, Name: "Weapon", LocalizedName: "무기",
			Description: "Swords, guns, bows, magic weapons", LocalizedDescription: "검, 총, 활, 마법 무기",
			Category:     "2d",
			PromptPrefix: "game weapon design, detailed weapon art, fantasy weapon, epic quality,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"legendary sword", "frost bow", "thunder staff", "dark dagger"},
			Tags:         []string{"melee", "ranged", "magic", "legendary"},
		},
		{
			ID: domain.StyleArmor, Name: "Armor", LocalizedName: "방어구",
			Description: "Helmets, shields, chest plates, accessories", LocalizedDescription: "투구, 방패, 흉갑, 악세서리",
			Category:     "2d",
			PromptPrefix: "game armor design, detailed armor art, fantasy equipment, protective gear,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"dragon helmet", "royal shield", "mithril armor", "magic ring"},
			Tags:         []string{"helmet", "shield", "chest", "accessory"},
		},
		{
			ID: domain.StyleEnvironment, Name: "Environment", LocalizedName: "환경/배경",
			Description: "Landscapes, dungeons, cities, backgrounds", LocalizedDescription: "풍경, 던전, 도시, 배경",
			Category:     "2d",
			PromptPrefix: "game environment art, detailed background, atmospheric lighting, game scenery,",
			AspectRatio:  domain.AspectWide,
			Examples:     []string{"dark dungeon", "magical forest", "floating castle", "volcanic wasteland"},
			Tags:         []string{"landscape", "dungeon", "city", "nature"},
		},
		{
			ID: domain.StyleUIElement, Name: "UI Element", LocalizedName: "UI 요소",
			Description: "Buttons, frames, panels, HUD elements", LocalizedDescription: "버튼, 프레임, 패널, HUD 요소",
			Category:     "ui",
			PromptPrefix: "game UI design, clean interface element, stylized UI, game menu asset,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"play button", "health bar", "inventory frame", "dialog box"},
			Tags:         []string{"button", "frame", "panel", "hud"},
		},
		{
			ID: domain.StyleTile, Name: "Tile / Tileset", LocalizedName: "타일 / 타일셋",
			Description: "Floor tiles, wall tiles, seamless patterns", LocalizedDescription: "바닥 타일, 벽 타일, 이음새 없는 패턴",
			Category:     "2d",
			PromptPrefix: "game tileset design, seamless tile pattern, top-down view, tileable texture,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"grass tile", "stone floor", "water surface", "lava ground"},
			Tags:         []string{"floor", "wall", "seamless", "pattern"},
		},
		{
			ID: domain.StylePixelArt, Name: "Pixel Art", LocalizedName: "픽셀 아트",
			Description: "8-bit, 16-bit, retro game style", LocalizedDescription: "8비트, 16비트, 레트로 게임 스타일",
			Category:     "2d",
			PromptPrefix: "pixel art style, retro game graphics, 16-bit, clean pixels, no anti-aliasing,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"pixel hero", "pixel monster", "pixel sword", "pixel treasure"},
			Tags:         []string{"retro", "8bit", "16bit", "sprite"},
		},
		{
			ID: domain.StyleVFX, Name: "VFX / Effects", LocalizedName: "VFX / 이펙트",
			Description: "Explosions, magic effects, particles", LocalizedDescription: "폭발, 마법 효과, 파티클",
			Category:     "effects",
			PromptPrefix: "game vfx design, particle effect, magical glow, dynamic effect,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"fire explosion", "healing aura", "lightning strike", "smoke cloud"},
			Tags:         []string{"particle", "explosion", "magic", "glow"},
		},
		{
			ID: domain.StyleCreature, Name: "Creature / Monster", LocalizedName: "크리처 / 몬스터",
			Description: "Monsters, beasts, bosses, enemies", LocalizedDescription: "몬스터, 야수, 보스, 적",
			Category:     "2d",
			PromptPrefix: "game creature design, monster art, fantasy beast, detailed creature,",
			AspectRatio:  domain.AspectLandscape,
			Examples:     []string{"fire dragon", "undead skeleton", "forest troll", "shadow demon"},
			Tags:         []string{"monster", "boss", "enemy", "beast"},
		},
		{
			ID: domain.StyleVehicle, Name: "Vehicle", LocalizedName: "탈것",
			Description: "Cars, ships, spaceships, mounts", LocalizedDescription: "자동차, 배, 우주선, 탈것",
			Category:     "2d",
			PromptPrefix: "game vehicle design, detailed transport, fantasy vehicle,",
			AspectRatio:  domain.AspectLandscape,
			Examples:     []string{"dragon mount", "pirate ship", "sci-fi fighter", "magic carpet"},
			Tags:         []string{"mount", "ship", "aircraft", "transport"},
		},
		{
			ID: domain.StyleBuilding, Name: "Building", LocalizedName: "건물",
			Description: "Houses, castles, shops, structures", LocalizedDescription: "집, 성, 상점, 구조물",
			Category:     "2d",
			PromptPrefix: "game building design, architectural art, fantasy structure, detailed building,",
			AspectRatio:  domain.AspectLandscape,
			Examples:     []string{"medieval castle", "magic tower", "blacksmith shop", "tavern inn"},
			Tags:         []string{"castle", "house", "shop", "tower"},
		},
		{
			ID: domain.StyleProp, Name: "Prop", LocalizedName: "소품",
			Description: "Furniture, decorations, objects", LocalizedDescription: "가구, 장식, 오브젝트",
			Category:     "2d",
			PromptPrefix: "game prop design, detailed object art, fantasy furniture, decorative item,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"treasure chest", "ancient bookshelf", "magic mirror", "stone statue"},
			Tags:         []string{"furniture", "decoration", "object", "interactive"},
		},
		{
			ID: domain.StylePortrait, Name: "Portrait", LocalizedName: "초상화",
			Description: "Character portraits, avatars, profile images", LocalizedDescription: "캐릭터 초상화, 아바타, 프로필 이미지",
			Category:     "2d",
			PromptPrefix: "game character portrait, detailed face, expressive portrait, high quality,",
			AspectRatio:  domain.AspectPortrait,
			Examples:     []string{"knight portrait", "witch avatar", "king portrait", "villain face"},
			Tags:         []string{"avatar", "face", "profile", "headshot"},
		},
		{
			ID: domain.StyleLogo, Name: "Logo / Title", LocalizedName: "로고 / 타이틀",
			Description: "Game logos, title screens, branding", LocalizedDescription: "게임 로고, 타이틀 화면, 브랜딩",
			Category:     "ui",
			PromptPrefix: "game logo design, epic title art, stylized typography, professional branding,",
			AspectRatio:  domain.AspectWide,
			Examples:     []string{"fantasy logo", "sci-fi title", "adventure emblem", "RPG badge"},
			Tags:         []string{"logo", "title", "emblem", "brand"},
		},
		{
			ID: domain.StyleTexture, Name: "Texture", LocalizedName: "텍스처",
			Description: "PBR textures, materials, surfaces", LocalizedDescription: "PBR 텍스처, 재질, 표면",
			Category:     "3d",
			PromptPrefix: "seamless texture, tileable pattern, PBR material, detailed surface,",
			AspectRatio:  domain.AspectSquare,
			Examples:     []string{"stone wall", "metal plate", "wood grain", "fabric cloth"},
			Tags:         []string{"pbr", "material", "surface", "seamless"},
		},
		{
			ID: domain.StyleSpritesheet, Name: "Spritesheet", LocalizedName: "스프라이트시트",
			Description: "Animation frames, character sheets", LocalizedDescription: "애니메이션 프레임, 캐릭터 시트",
			Category:     "2d",
			PromptPrefix: "game sprite design, animation frame, character pose, game ready sprite,",
			AspectRatio:  domain.AspectWide,
			Examples:     []string{"walk cycle", "attack animation", "idle pose", "death sequence"},
			Tags:         []string{"animation", "frame", "sprite", "sheet"},
		},
	}
}

// builtinCategories は組み込みのカテゴリ表を生成します。
func builtinCategories() []Category {
	return []Category{
		{
			ID: "2d", Name: "2D Art", LocalizedName: "2D 아트",
			Styles: []domain.Style{
				domain.StyleCharacter, domain.StyleItem, domain.StyleWeapon, domain.StyleArmor,
				domain.StyleEnvironment, domain.StyleTile, domain.StylePixelArt, domain.StyleCreature,
				domain.StyleVehicle, domain.StyleBuilding, domain.StyleProp, domain.StylePortrait,
				domain.StyleSpritesheet,
			},
		},
		{
			ID: "ui", Name: "UI/UX", LocalizedName: "UI/UX",
			Styles: []domain.Style{domain.StyleIcon, domain.StyleUIElement, domain.StyleLogo},
		},
		{
			ID: "3d", Name: "3D / Texture", LocalizedName: "3D / 텍스처",
			Styles: []domain.Style{domain.StyleTexture},
		},
		{
			ID: "effects", Name: "Effects", LocalizedName: "이펙트",
			Styles: []domain.Style{domain.StyleVFX},
		},
	}
}
