// Package dataset загружает датасет лиц в масках: изображения из images/
// и разметку из annotations/, сопоставленные по порядку естественной сортировки.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
	"facemask/internal/infrastructure/imageio"
	"facemask/internal/infrastructure/voc"
)

const (
	ImagesDir      = "images"
	AnnotationsDir = "annotations"
)

// FaceMaskDataset полностью загруженный в память датасет.
// После построения не изменяется и безопасен для параллельного чтения.
type FaceMaskDataset struct {
	entries []entity.Entry
}

// New перечисляет, проверяет и загружает датасет из root.
// При любой ошибке частичный датасет не возвращается.
func New(fs afero.Fs, root string, opts ...Option) (*FaceMaskDataset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	imageDir := filepath.Join(root, ImagesDir)
	annotDir := filepath.Join(root, AnnotationsDir)
	for _, dir := range []string{imageDir, annotDir} {
		if err := requireDir(fs, dir); err != nil {
			return nil, err
		}
	}

	imagePaths, err := listFiles(fs, imageDir)
	if err != nil {
		return nil, err
	}
	annotPaths, err := listFiles(fs, annotDir)
	if err != nil {
		return nil, err
	}

	if len(imagePaths) != len(annotPaths) {
		return nil, fmt.Errorf("%w: %d images, %d annotations", entity.ErrCountMismatch, len(imagePaths), len(annotPaths))
	}

	positions, err := selectPositions(len(imagePaths), o)
	if err != nil {
		return nil, err
	}

	images := imageio.NewLoader(fs, o.transform)
	annotations := voc.NewReader(fs)

	entries := make([]entity.Entry, 0, len(positions))
	for i, pos := range positions {
		img, err := images.Load(imagePaths[pos])
		if err != nil {
			return nil, err
		}
		objs, err := annotations.ReadLabels(annotPaths[pos])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entity.Entry{
			Index:          i,
			ImagePath:      imagePaths[pos],
			AnnotationPath: annotPaths[pos],
			Image:          img,
			Objects:        objs,
		})

		if o.progress != nil {
			o.progress(i+1, len(positions))
		}
	}

	log.Debug().
		Str("root", root).
		Int("total", len(imagePaths)).
		Int("loaded", len(entries)).
		Msg("dataset loaded")

	return &FaceMaskDataset{entries: entries}, nil
}

// Size возвращает число загруженных элементов
func (d *FaceMaskDataset) Size() int {
	return len(d.entries)
}

// Get возвращает элемент по плотному индексу
func (d *FaceMaskDataset) Get(index int) (entity.Entry, error) {
	if index < 0 || index >= len(d.entries) {
		return entity.Entry{}, fmt.Errorf("%w: %d not in [0, %d)", entity.ErrIndexOutOfRange, index, len(d.entries))
	}
	e := d.entries[index]
	e.Objects = append([]entity.Object(nil), e.Objects...)
	return e, nil
}

func requireDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", entity.ErrMissingDirectory, dir)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", entity.ErrMissingDirectory, dir)
	}
	return nil
}

// listFiles возвращает файлы каталога в естественном порядке, подкаталоги пропускаются.
func listFiles(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// selectPositions возвращает позиции файлов для загрузки по возрастанию.
func selectPositions(total int, o options) ([]int, error) {
	if !o.subset {
		positions := make([]int, total)
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	}

	if len(o.indices) == 0 {
		return nil, entity.ErrEmptySubset
	}

	seen := make(map[int]struct{}, len(o.indices))
	positions := make([]int, 0, len(o.indices))
	for _, idx := range o.indices {
		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("%w: %w: %d not in [0, %d)", entity.ErrInvalidSubset, entity.ErrIndexOutOfRange, idx, total)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: %d", entity.ErrDuplicateIndex, idx)
		}
		seen[idx] = struct{}{}
		positions = append(positions, idx)
	}
	sort.Ints(positions)
	return positions, nil
}

// Проверка реализации интерфейса
var _ port.Dataset = (*FaceMaskDataset)(nil)
