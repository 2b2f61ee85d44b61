package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shouni/go-asset-kit/internal/config"
)

var (
	opts config.GenerateOptions
	cfg  = loadConfig()
)

// loadConfig は .env があれば読み込んでから環境変数を解釈するのだ。
func loadConfig() *config.Config {
	_ = godotenv.Load()
	return config.LoadConfig()
}

var rootCmd = &cobra.Command{
	Use:           "asset-kit",
	Short:         "ゲームアセットをAIで一括生成するのだ。",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&opts.RecordsFile, "records", "r", "output/assets.json", "アセット一覧 JSON のパスなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", "output", "画像とカタログを保存するディレクトリなのだ。")
	rootCmd.PersistentFlags().StringVar(&cfg.Kit.GeminiModel, "model", cfg.Kit.GeminiModel, "プロンプト強化と分析に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&cfg.Kit.ImageModel, "image-model", cfg.Kit.ImageModel, "画像生成に使うモデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&cfg.Kit.PacingDelay, "pacing", cfg.Kit.PacingDelay, "アセット間の待機時間なのだ。")
	rootCmd.PersistentFlags().DurationVar(&cfg.Kit.RequestTimeout, "timeout", cfg.Kit.RequestTimeout, "1リクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().StringVar(&cfg.Kit.GalleryFile, "gallery-file", cfg.Kit.GalleryFile, "ギャラリー履歴の保存先なのだ（空なら保存しない）。")
}

// preRunAppE は、コマンド実行前に必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// styles は API を使わないのだ
	if cmd.Name() == stylesCmd.Name() {
		return nil
	}
	if err := cfg.Kit.Validate(); err != nil {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ: %w", err)
	}
	return nil
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.PersistentPreRunE = preRunAppE
	rootCmd.AddCommand(stylesCmd, analyzeCmd, generateCmd, retryCmd, serveCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
func Execute() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("コマンドの実行に失敗したのだ", "error", err)
		os.Exit(1)
	}
}
