package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

var priorityOrder = []struct {
	priority domain.Priority
	heading  string
}{
	{domain.PriorityEssential, "必須 (essential)"},
	{domain.PriorityRecommended, "推奨 (recommended)"},
	{domain.PriorityOptional, "任意 (optional)"},
}

// BuildCatalog は、アセット一覧を優先度ごとにまとめた Markdown を生成します。
// 優先度でのグループ化は表示上のもので、生成順には影響しません。
func BuildCatalog(title string, records []domain.AssetRecord, imagePaths map[string]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	for _, group := range priorityOrder {
		var items []domain.AssetRecord
		for _, r := range records {
			if r.Priority == group.priority {
				items = append(items, r)
			}
		}
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n\n", group.heading)
		for _, r := range items {
			fmt.Fprintf(&sb, "### %s\n", r.Label())
			fmt.Fprintf(&sb, "- style: %s\n", r.Style)
			fmt.Fprintf(&sb, "- aspect: %s\n", r.AspectRatio)
			fmt.Fprintf(&sb, "- status: %s\n", r.Status)
			if r.Category != "" {
				fmt.Fprintf(&sb, "- category: %s\n", r.Category)
			}
			if p := strings.TrimSpace(r.Prompt); p != "" {
				fmt.Fprintf(&sb, "- prompt: %s\n", p)
			}
			if path, ok := imagePaths[r.ID]; ok {
				fmt.Fprintf(&sb, "\n![%s](%s)\n", r.Label(), path)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
