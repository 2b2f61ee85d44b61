package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

const (
	// ModeEnhance はプロンプト強化用のシステム指示です。
	ModeEnhance = "enhance"
	// ModeAnalyze はコンセプト分析用のシステム指示です。
	ModeAnalyze = "analyze"

	// QualityBooster はフォールバック時に付与する品質トークンです。
	QualityBooster = "high quality, detailed, professional game art"
)

var (
	//go:embed templates/enhance.md
	enhanceTemplate string
	//go:embed templates/analyze.md
	analyzeTemplate string

	allTemplates = map[string]string{
		ModeEnhance: enhanceTemplate,
		ModeAnalyze: analyzeTemplate,
	}
)

// TemplateData はシステム指示テンプレートに渡すデータです。
type TemplateData struct {
	StyleName    string
	PromptPrefix string
	StyleList    string
	AspectList   string
	MinAssets    int
	MaxAssets    int
}

// EnhanceUserPrompt は強化リクエストのユーザー入力部分を組み立てます。
func EnhanceUserPrompt(rawPrompt string) string {
	return fmt.Sprintf("Transform this into a professional game art prompt: %q", rawPrompt)
}

// AnalyzeUserPrompt はコンセプト分析リクエストのユーザー入力部分を組み立てます。
func AnalyzeUserPrompt(concept string) string {
	return fmt.Sprintf("Analyze this game concept and create asset list:\n\n%q", concept)
}

// FallbackPrompt は強化に失敗した場合の決定論的なプロンプトです。
// スタイルの接頭辞、元の記述、品質トークンを連結します。
func FallbackPrompt(promptPrefix, rawPrompt string) string {
	parts := make([]string, 0, 2)
	if p := strings.TrimSpace(promptPrefix); p != "" {
		parts = append(parts, p)
	}
	if p := strings.TrimSpace(rawPrompt); p != "" {
		parts = append(parts, p+",")
	}
	parts = append(parts, QualityBooster)
	return strings.Join(parts, " ")
}
