package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"generate-image/internal/imagefile"
	"generate-image/internal/openrouter"
)

var (
	aspectRatioFlag string
	imageSizeFlag   string
	proFlag         bool
	verboseFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "generate-image <prompt> <output>",
	Short: "Generate an image from a text prompt using OpenRouter",
	Long: `Generate an image from a text prompt using OpenRouter.

Aspect ratios: 1:1, 2:3, 3:2, 3:4, 4:3, 4:5, 5:4, 9:16, 16:9, 21:9
Image sizes:   1K, 2K, 4K

Requires OPENROUTER_API_KEY in the environment or a local .env file.

Examples:
  $ generate-image "a cat on a skateboard" cat.png
  $ generate-image "sunset" sunset.png -a 16:9 -s 2K
  $ generate-image "landscape" landscape.png --pro
  $ generate-image "test" test.png -v`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(cmd, args[0], args[1])
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&aspectRatioFlag, "aspect-ratio", "a", openrouter.DefaultAspectRatio, "Aspect ratio")
	rootCmd.Flags().StringVarP(&imageSizeFlag, "size", "s", openrouter.DefaultImageSize, "Image size (1K|2K|4K)")
	rootCmd.Flags().BoolVar(&proFlag, "pro", false, "Use the Pro model")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show request and response details")
}

func run(cmd *cobra.Command, prompt, outputPath string) error {
	if err := godotenv.Load(); err != nil && verboseFlag {
		fmt.Fprintln(cmd.ErrOrStderr(), "No .env file found")
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return openrouter.ErrMissingAPIKey
	}

	model := openrouter.ModelFlash
	if proFlag {
		model = openrouter.ModelPro
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Model: %s\n", model)
	fmt.Fprintf(out, "Aspect Ratio: %s\n", aspectRatioFlag)
	fmt.Fprintf(out, "Image Size: %s\n", imageSizeFlag)
	fmt.Fprintf(out, "Generating: %s\n", prompt)

	client := openrouter.NewClient(openrouter.Config{
		APIKey: apiKey,
		Logger: newLogger(verboseFlag),
	})

	data, err := client.Generate(cmd.Context(), openrouter.GenerationRequest{
		Prompt:      prompt,
		Model:       model,
		AspectRatio: aspectRatioFlag,
		ImageSize:   imageSizeFlag,
	})
	if err != nil {
		return err
	}

	path, err := imagefile.Save(outputPath, data)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, color.GreenString("✓ Saved to: %s", path))
	return nil
}

// newLogger returns a debug-level logger under --verbose and an
// info-level one otherwise, so client diagnostics stay silent by default.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.Kitchen,
		Level:      level,
	}))
}
