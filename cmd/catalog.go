package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/progress"
)

var (
	scanDir      string
	scanBucket   string
	scanPrefix   string
	scanRegion   string
	scanBaseURL  string
	scanExcludes []string
	scanWrite    bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and maintain the site catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a catalog file and print what it contains",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := catalogPath(args)
		if err != nil {
			return err
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), path, cat)
		return nil
	},
}

var catalogScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rebuild the gallery media from a directory or S3 bucket",
	Long: `Lists media laid out as <category>/<file> under --dir or s3://--bucket/--prefix
and merges the result into the catalog's media section. Without --write the
merged catalog is only validated and summarised.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (scanDir == "") == (scanBucket == "") {
			return fmt.Errorf("exactly one of --dir or --bucket is required")
		}
		path, err := catalogPath(nil)
		if err != nil {
			return err
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		reporter := progress.NewReporter(os.Stderr, "Scanning media")
		scanned, err := scan(ctx, reporter)
		reporter.Finish()
		if err != nil {
			return err
		}

		cat.Merge(scanned)
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("merged catalog: %w", err)
		}
		printStats(cmd.OutOrStdout(), path, cat)

		if !scanWrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Dry run; pass --write to update the catalog.")
			return nil
		}
		if err := cat.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func scan(ctx context.Context, p catalog.Progress) ([]gallery.Category, error) {
	if scanDir != "" {
		return catalog.DirScanner{Root: scanDir, BaseURL: scanBaseURL, Excludes: scanExcludes}.Scan(ctx, p)
	}
	awsCfg, err := loadAWSConfig(ctx, scanRegion)
	if err != nil {
		return nil, err
	}
	return catalog.S3Scanner{
		Client:   s3.NewFromConfig(awsCfg),
		Bucket:   scanBucket,
		Prefix:   scanPrefix,
		BaseURL:  scanBaseURL,
		Excludes: scanExcludes,
	}.Scan(ctx, p)
}

// catalogPath prefers an explicit argument, then the configured file.
func catalogPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.CatalogFile, nil
}

func printStats(w io.Writer, path string, cat *catalog.Catalog) {
	s := cat.Stats()
	fmt.Fprintf(w, "%s: %s\n", path, cat.Studio.Name)
	fmt.Fprintf(w, "  hero slides:   %d\n", s.Slides)
	fmt.Fprintf(w, "  services:      %d\n", s.Services)
	fmt.Fprintf(w, "  courses:       %d\n", s.Courses)
	fmt.Fprintf(w, "  testimonials:  %d\n", s.Testimonials)
	fmt.Fprintf(w, "  categories:    %d (%d images, %d videos)\n", s.Categories, s.Images, s.Videos)
	for _, c := range cat.Media {
		fmt.Fprintf(w, "    %-16s %3d images %3d videos\n", c.Name, len(c.Images), len(c.Videos))
	}
}

func init() {
	catalogScanCmd.Flags().StringVar(&scanDir, "dir", "", "media directory to scan")
	catalogScanCmd.Flags().StringVar(&scanBucket, "bucket", "", "S3 bucket to scan")
	catalogScanCmd.Flags().StringVar(&scanPrefix, "prefix", "", "key prefix inside the bucket")
	catalogScanCmd.Flags().StringVar(&scanRegion, "region", "", "AWS region of the bucket")
	catalogScanCmd.Flags().StringVar(&scanBaseURL, "base-url", "/media", "URL prefix for scanned media")
	catalogScanCmd.Flags().StringSliceVar(&scanExcludes, "exclude", nil, "extra glob patterns to skip")
	catalogScanCmd.Flags().BoolVar(&scanWrite, "write", false, "save the merged catalog")

	catalogCmd.AddCommand(catalogCheckCmd, catalogScanCmd)
	rootCmd.AddCommand(catalogCmd)
}
