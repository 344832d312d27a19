package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alfareiza/4yousee/fouryousee"
)

var (
	uploadCategories []int
	uploadDuration   int
	uploadName       string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files, optionally creating a media for each",
	Long: `Upload mp4, jpeg, png or zip files to 4YouSee. Files may be given as
separate arguments or as a comma separated list.

With --category every file becomes a media in the given categories.`,
	Example: `  4yousee upload promo.mp4,banner.png
  4yousee upload banner.png --category 3 --duration 15`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().IntSliceVarP(&uploadCategories, "category", "c", nil, "create medias in these category ids")
	uploadCmd.Flags().IntVar(&uploadDuration, "duration", 0, "media duration in seconds (images and zip packages)")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "media name (single file only, defaults to the file name)")
}

// splitPaths expands comma separated arguments into file paths
func splitPaths(args []string) []string {
	var paths []string
	for _, arg := range args {
		for _, path := range strings.Split(arg, ",") {
			if path = strings.TrimSpace(path); path != "" {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	paths := splitPaths(args)

	if cfg.Safety.DryRun {
		for _, path := range paths {
			logger.Info().Str("file", path).Ints("categories", uploadCategories).Msg("[DRY RUN] Would upload file")
		}
		return nil
	}

	if len(uploadCategories) == 0 {
		uploads, err := client.UploadFiles(ctx, paths...)
		if err != nil {
			return err
		}
		logger.Info().Int("count", len(uploads)).Msg("Upload complete")
		return printJSON(os.Stdout, uploads)
	}

	name := ""
	if len(paths) == 1 {
		name = uploadName
	} else if uploadName != "" {
		logger.Warn().Msg("--name is ignored when uploading several files")
	}

	medias := make([]fouryousee.Record, 0, len(paths))
	for _, path := range paths {
		media, err := client.AddMedia(ctx, fouryousee.MediaInput{
			File:       path,
			Name:       name,
			Categories: uploadCategories,
			Duration:   uploadDuration,
		})
		if err != nil {
			return err
		}
		logger.Info().Str("file", path).Str("media_id", media.ID()).Msg("Media created")
		medias = append(medias, media)
	}

	return printJSON(os.Stdout, medias)
}
