package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
)

var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".avif": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".mov": true, ".m4v": true}
)

// DefaultExcludes are skipped by every scanner.
var DefaultExcludes = []string{"**/.*", "**/thumbs/**", "**/_drafts/**"}

// Progress is told about each media file found. May be nil.
type Progress interface {
	Increment(name string)
}

// MediaKind classifies a file by extension.
func MediaKind(name string) gallery.Kind {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExts[ext]:
		return gallery.KindImage
	case videoExts[ext]:
		return gallery.KindVideo
	default:
		return gallery.KindNone
	}
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// collector groups "<category>/<...>/<file>" keys into sorted categories.
type collector struct {
	baseURL string
	cats    map[string]*gallery.Category
}

func newCollector(baseURL string) *collector {
	return &collector{baseURL: strings.TrimSuffix(baseURL, "/"), cats: make(map[string]*gallery.Category)}
}

func (c *collector) add(rel string) bool {
	rel = strings.TrimPrefix(rel, "/")
	name, _, ok := strings.Cut(rel, "/")
	if !ok || name == "" {
		return false
	}
	kind := MediaKind(rel)
	if kind == gallery.KindNone {
		return false
	}
	cat := c.cats[name]
	if cat == nil {
		cat = &gallery.Category{Name: name}
		c.cats[name] = cat
	}
	src := c.baseURL + "/" + escapePath(rel)
	if kind == gallery.KindVideo {
		cat.Videos = append(cat.Videos, src)
	} else {
		cat.Images = append(cat.Images, src)
	}
	return true
}

// escapePath escapes each segment of a slash-separated key.
func escapePath(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func (c *collector) categories() []gallery.Category {
	out := make([]gallery.Category, 0, len(c.cats))
	for _, cat := range c.cats {
		sort.Strings(cat.Images)
		sort.Strings(cat.Videos)
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DirScanner builds media categories from a directory laid out as
// <root>/<category>/<file>.
type DirScanner struct {
	Root     string
	BaseURL  string
	Excludes []string
}

// Scan walks the tree. Files directly under Root and unknown extensions are
// skipped.
func (d DirScanner) Scan(ctx context.Context, p Progress) ([]gallery.Category, error) {
	excludes := append(append([]string{}, DefaultExcludes...), d.Excludes...)
	col := newCollector(d.BaseURL)

	fsys := filepath.Clean(d.Root)
	err := filepath.WalkDir(fsys, func(full string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		rel, err := filepath.Rel(fsys, full)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel, excludes) {
			if e.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if e.IsDir() {
			return nil
		}
		if col.add(rel) && p != nil {
			p.Increment(rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", d.Root, err)
	}
	return col.categories(), nil
}

// ListObjectsAPI is the part of the S3 client the bucket scanner uses.
type ListObjectsAPI interface {
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Scanner builds media categories from keys under Prefix, laid out as
// <prefix><category>/<file>.
type S3Scanner struct {
	Client   ListObjectsAPI
	Bucket   string
	Prefix   string
	BaseURL  string
	Excludes []string
}

// Scan lists every object under the prefix.
func (s S3Scanner) Scan(ctx context.Context, p Progress) ([]gallery.Category, error) {
	excludes := append(append([]string{}, DefaultExcludes...), s.Excludes...)
	col := newCollector(s.BaseURL)

	pager := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(s.Prefix),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing s3://%s/%s: %w", s.Bucket, s.Prefix, err)
		}
		for _, obj := range page.Contents {
			rel := strings.TrimPrefix(aws.ToString(obj.Key), s.Prefix)
			if rel == "" || strings.HasSuffix(rel, "/") || excluded(rel, excludes) {
				continue
			}
			if col.add(rel) && p != nil {
				p.Increment(rel)
			}
		}
	}
	return col.categories(), nil
}

// Merge replaces the media of c with scanned categories, keeping the
// catalog's order for names it already lists and appending new ones.
func (c *Catalog) Merge(scanned []gallery.Category) {
	byName := make(map[string]gallery.Category, len(scanned))
	for _, s := range scanned {
		byName[s.Name] = s
	}
	merged := make([]gallery.Category, 0, len(scanned))
	for _, m := range c.Media {
		if s, ok := byName[m.Name]; ok {
			merged = append(merged, s)
			delete(byName, m.Name)
		} else {
			merged = append(merged, m)
		}
	}
	for _, s := range scanned {
		if _, ok := byName[s.Name]; ok {
			merged = append(merged, s)
		}
	}
	c.Media = merged
}
