package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jslex/internal/diag"
	"jslex/internal/pipeline"
	"jslex/internal/source"
)

// DirOptions настраивает параллельную токенизацию каталога.
type DirOptions struct {
	// Jobs ограничивает число одновременно лексируемых файлов.
	// 0 — по числу CPU.
	Jobs int
	// MaxDiagnostics — лимит Bag на каждый файл.
	MaxDiagnostics int
	// Progress получает события очереди/работы/завершения по файлам.
	Progress pipeline.ProgressSink
	// Cache — дисковый кэш токенов; nil отключает кэширование.
	Cache *TokenCache
	// Exts — расширения исходников; по умолчанию .js и .ts.
	Exts []string
}

// FileResult — итог токенизации одного файла каталога.
type FileResult struct {
	Path      string
	Result    *TokenizeResult
	FromCache bool
	Err       error
	Elapsed   time.Duration
}

// DirResult — итог обхода каталога.
type DirResult struct {
	Root    string
	Files   []FileResult
	Elapsed time.Duration
}

// ErrorCount возвращает число файлов, завершившихся ошибкой ввода-вывода.
func (r *DirResult) ErrorCount() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Err != nil {
			n++
		}
	}
	return n
}

// DiscoverFiles находит исходники под dir. Скрытые каталоги
// и node_modules пропускаются. Результат отсортирован.
func DiscoverFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{".js", ".ts"}
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(name)
		for _, want := range exts {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники каталога, по одному независимому
// лексеру на файл. Ошибки ввода-вывода не прерывают обход — они оседают
// в FileResult.Err; досрочно завершает работу только отмена контекста.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*DirResult, error) {
	started := time.Now()

	files, err := DiscoverFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}

	for _, path := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{
			File:   path,
			Stage:  pipeline.StageLoad,
			Status: pipeline.StatusQueued,
		})
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pipeline.Emit(opts.Progress, pipeline.Event{
				File:   path,
				Stage:  pipeline.StageTokenize,
				Status: pipeline.StatusWorking,
			})

			fileStart := time.Now()
			res := tokenizeOne(path, maxDiags, opts.Cache)
			res.Elapsed = time.Since(fileStart)
			results[i] = res

			status := pipeline.StatusDone
			if res.Err != nil {
				status = pipeline.StatusError
			}
			pipeline.Emit(opts.Progress, pipeline.Event{
				File:    path,
				Stage:   pipeline.StageTokenize,
				Status:  status,
				Err:     res.Err,
				Elapsed: res.Elapsed,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DirResult{
		Root:    dir,
		Files:   results,
		Elapsed: time.Since(started),
	}, nil
}

// tokenizeOne загружает файл и либо достаёт токены из кэша по хешу
// содержимого, либо лексирует и кладёт чистый результат в кэш.
func tokenizeOne(path string, maxDiags int, cache *TokenCache) FileResult {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	file := fileSet.Get(fileID)

	if cache != nil {
		var payload TokenPayload
		if ok, getErr := cache.Get(file.Hash, &payload); getErr == nil && ok {
			return FileResult{
				Path: path,
				Result: &TokenizeResult{
					FileSet: fileSet,
					File:    file,
					Tokens:  tokensFromPayload(&payload, fileID),
					Bag:     diag.NewBag(maxDiags),
				},
				FromCache: true,
			}
		}
	}

	res := tokenizeFile(fileSet, fileID, maxDiags)
	if cache != nil {
		if payload := payloadFromResult(res); payload != nil {
			// кэш — best effort: промах записи не ломает токенизацию
			_ = cache.Put(file.Hash, payload)
		}
	}
	return FileResult{Path: path, Result: res}
}
