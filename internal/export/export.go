package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fufuok/cmap"
	"golang.org/x/sync/errgroup"

	"github.com/kids-activity-tracker/appicon/pkg/graphics"
)

type Generator struct {
	Root    string // project root holding the ios/ and android/ trees
	Icon    *graphics.AppIcon
	Out     io.Writer // progress lines
	Workers int

	mu      sync.Mutex               // guards Out
	written *cmap.MapOf[string, int] // key: written path, value: pixel size
}

type Output struct {
	Path string
	Size int
}

func NewGenerator(root string) *Generator {
	return &Generator{
		Root:    root,
		Icon:    graphics.NewAppIcon(),
		Out:     os.Stdout,
		Workers: runtime.NumCPU(),
	}
}

// Run writes the iOS icons and their manifest, then the Android launcher
// icons. The first failure stops the run.
func (g *Generator) Run(ctx context.Context) ([]Output, error) {
	g.written = cmap.NewOf[string, int]()

	g.println("Generating iOS icons...")
	if err := g.exportIOS(ctx); err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(g.Root, IOSDir, ManifestName)
	if err := NewManifest().WriteFile(manifestPath); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	g.println("Updated " + ManifestName)

	g.println("\nGenerating Android icons...")
	if err := g.exportAndroid(ctx); err != nil {
		return nil, err
	}
	g.println("\nApp icons generated successfully!")

	return g.outputs(), nil
}

func (g *Generator) exportIOS(ctx context.Context) error {
	dir := filepath.Join(g.Root, IOSDir)
	eg, ctx := g.group(ctx)
	for _, icon := range IOSIcons {
		eg.Go(func() error {
			img, err := g.render(ctx, icon.Size)
			if err != nil {
				return err
			}
			if err := g.writePNG(filepath.Join(dir, icon.Filename), img, icon.Size); err != nil {
				return err
			}
			g.println(fmt.Sprintf("Created %s (%dx%d)", icon.Filename, icon.Size, icon.Size))
			return nil
		})
	}
	return eg.Wait()
}

func (g *Generator) exportAndroid(ctx context.Context) error {
	res := filepath.Join(g.Root, AndroidDir)
	eg, ctx := g.group(ctx)
	for _, icon := range AndroidIcons {
		eg.Go(func() error {
			dir := filepath.Join(res, icon.Dir)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			img, err := g.render(ctx, icon.Size)
			if err != nil {
				return err
			}
			// the round launcher is the same bitmap
			for _, name := range []string{AndroidLauncher, AndroidLauncherRound} {
				if err := g.writePNG(filepath.Join(dir, name), img, icon.Size); err != nil {
					return err
				}
				g.println(fmt.Sprintf("Created %s/%s (%dx%d)", icon.Dir, name, icon.Size, icon.Size))
			}
			return nil
		})
	}
	return eg.Wait()
}

func (g *Generator) group(ctx context.Context) (*errgroup.Group, context.Context) {
	eg, ctx := errgroup.WithContext(ctx)
	if g.Workers > 0 {
		eg.SetLimit(g.Workers)
	}
	return eg, ctx
}

func (g *Generator) render(ctx context.Context, size int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := g.Icon.Render(size)
	if err != nil {
		return nil, fmt.Errorf("render %dx%d: %w", size, size, err)
	}
	return img, nil
}

func (g *Generator) writePNG(path string, img image.Image, size int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			// a truncated PNG must not look like a generated icon
			os.Remove(path)
			return
		}
		g.written.Set(path, size)
	}()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func (g *Generator) println(line string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := fmt.Fprintln(g.Out, line); err != nil {
		log.Printf("error writing progress: %v\n", err)
	}
}

func (g *Generator) outputs() []Output {
	items := g.written.Items()
	outputs := make([]Output, 0, len(items))
	for path, size := range items {
		outputs = append(outputs, Output{Path: path, Size: size})
	}
	sort.Slice(outputs, func(i, j int) bool {
		return outputs[i].Path < outputs[j].Path
	})
	return outputs
}
