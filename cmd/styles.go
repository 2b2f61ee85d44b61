package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-asset-kit/pkg/style"
)

var stylesCategory string

// stylesCmd は、利用できるスタイルの一覧を表示するのだ。
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "利用できるスタイルの一覧を表示するのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := style.NewResolver()
		descs := resolver.All()
		if stylesCategory != "" {
			descs = resolver.ByCategory(stylesCategory)
		}
		out := cmd.OutOrStdout()
		for _, d := range descs {
			fmt.Fprintf(out, "%-12s %-8s %-5s %s\n", d.ID, d.Category, d.AspectRatio, d.LocalizedName)
		}
		return nil
	},
}

func init() {
	stylesCmd.Flags().StringVarP(&stylesCategory, "category", "c", "", "カテゴリ (2d, ui, 3d, effects) で絞り込むのだ。")
}
