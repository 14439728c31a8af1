// internal/assets/loader.go
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Bundle — всё, что нужно рендереру: таблица спрайтов и декодированные картинки.
// Sheet и Life равны nil, если файла нет; рендерер тогда рисует заглушки.
type Bundle struct {
	Atlas *defs.Atlas
	Sheet image.Image
	Life  image.Image
}

// Load читает атлас и декодирует картинки параллельно.
// Отсутствующий файл — не ошибка, битый файл — ошибка.
func Load(ctx context.Context, cfg config.AssetsConfig, log *zap.Logger) (*Bundle, error) {
	b := &Bundle{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		atlas, err := defs.LoadAtlas(cfg.Atlas)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("atlas not found, using built-in table", zap.String("path", cfg.Atlas))
			b.Atlas = defs.DefaultAtlas()
			return nil
		}
		if err != nil {
			return fmt.Errorf("load atlas %s: %w", cfg.Atlas, err)
		}
		b.Atlas = atlas
		return nil
	})
	g.Go(func() error {
		img, err := decodeImage(ctx, cfg.Sheet, log)
		b.Sheet = img
		return err
	})
	g.Go(func() error {
		img, err := decodeImage(ctx, cfg.LifeImage, log)
		b.Life = img
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("assets loaded",
		zap.Int("sprites", len(b.Atlas.Sprites)),
		zap.Bool("sheet", b.Sheet != nil),
		zap.Bool("life", b.Life != nil))
	return b, nil
}

func decodeImage(ctx context.Context, path string, log *zap.Logger) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("image not found, placeholders will be drawn", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Loader — асинхронная загрузка, которая разрешается ровно один раз.
// До готовности ядро не запускается.
type Loader struct {
	done   chan struct{}
	bundle *Bundle
	err    error
}

// Start запускает загрузку в фоне
func Start(ctx context.Context, cfg config.AssetsConfig, log *zap.Logger) *Loader {
	l := &Loader{done: make(chan struct{})}
	go func() {
		defer close(l.done)
		l.bundle, l.err = Load(ctx, cfg, log)
	}()
	return l
}

// Poll не блокирует: ready=false, пока загрузка идёт
func (l *Loader) Poll() (bundle *Bundle, ready bool, err error) {
	select {
	case <-l.done:
		return l.bundle, true, l.err
	default:
		return nil, false, nil
	}
}
