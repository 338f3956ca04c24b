// Package files управляет списком файлов пользователя: фильтры, сортировка, страницы,
// отложенная загрузка с отменой устаревших запросов, загрузка и удаление файлов.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/client/storage"
	"github.com/iudanet/secureshare/internal/models"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

// DefaultDebounce задержка перед запросом после изменения параметров
const DefaultDebounce = 300 * time.Millisecond

// ErrClosed движок закрыт
var ErrClosed = errors.New("file engine is closed")

//go:generate moq -out api_mock.go . API

// API методы сервера для работы с файлами
type API interface {
	ListFiles(ctx context.Context, params url.Values) (*pkgapi.FileListResponse, error)
	Upload(ctx context.Context, filename string, content io.Reader, expireDays int) (*pkgapi.FileInfo, error)
	DeleteFile(ctx context.Context, route api.DeleteRoute, fileID uuid.UUID) error
}

var _ API = (*api.Client)(nil)

// Linker создает ссылки на файлы
type Linker interface {
	EnsureShareLink(ctx context.Context, fileID uuid.UUID, settings models.ShareSettings) (string, error)
}

// Options настройки движка
type Options struct {
	Logger       *slog.Logger
	Links        storage.ShareLinkStorage // может быть nil, тогда ссылки живут только в памяти
	OnChange     func(State)              // вызывается после каждого примененного результата
	DeleteRoutes []api.DeleteRoute
	Debounce     time.Duration
}

// State снимок видимого состояния списка
type State struct {
	Err        error // ошибка последнего запроса
	Links      map[uuid.UUID]string
	Files      []models.FileRecord
	Query      Query
	Pagination Pagination
	Total      int
	Loaded     bool // получен хотя бы один ответ
}

// Engine движок запросов списка файлов.
// Видимое состояние меняет только последний начатый запрос.
type Engine struct {
	api    API
	linker Linker
	opts   Options
	logger *slog.Logger

	ctx       context.Context // время жизни движка
	cancelAll context.CancelFunc
	wg        sync.WaitGroup

	mu       sync.Mutex
	query    Query
	files    []models.FileRecord
	total    int
	loaded   bool
	lastErr  error
	links    map[uuid.UUID]string
	settings models.ShareSettings

	timer       *time.Timer
	scheduleGen uint64
	cancelFetch context.CancelFunc
	seq         uint64
	closed      bool
}

// NewEngine создает движок. Первый запрос не выполняется, пока не вызван Refresh
// или не изменен какой-либо параметр.
func NewEngine(client API, linker Linker, opts Options) *Engine {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if len(opts.DeleteRoutes) == 0 {
		opts.DeleteRoutes = api.DefaultDeleteRoutes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		api:       client,
		linker:    linker,
		opts:      opts,
		logger:    opts.Logger,
		ctx:       ctx,
		cancelAll: cancel,
		query:     DefaultQuery(),
		links:     make(map[uuid.UUID]string),
		settings:  models.DefaultShareSettings(),
	}
}

// State возвращает снимок текущего состояния
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Query возвращает текущие параметры
func (e *Engine) Query() Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// SetSearch задает строку поиска
func (e *Engine) SetSearch(search string) {
	e.update(func(q *Query) { q.Search = search })
}

// SetFileType задает фильтр по типу; пустая строка снимает фильтр
func (e *Engine) SetFileType(fileType string) {
	e.update(func(q *Query) { q.FileType = fileType })
}

// SetDateRange задает диапазон дат загрузки (YYYY-MM-DD), пустые границы не фильтруют
func (e *Engine) SetDateRange(start, end string) error {
	if err := validation.ValidateDate("start date", start); err != nil {
		return err
	}
	if err := validation.ValidateDate("end date", end); err != nil {
		return err
	}
	e.update(func(q *Query) {
		q.StartDate = start
		q.EndDate = end
	})
	return nil
}

// SetStartDate задает нижнюю границу даты, верхняя не меняется
func (e *Engine) SetStartDate(start string) error {
	if err := validation.ValidateDate("start date", start); err != nil {
		return err
	}
	e.update(func(q *Query) { q.StartDate = start })
	return nil
}

// SetEndDate задает верхнюю границу даты, нижняя не меняется
func (e *Engine) SetEndDate(end string) error {
	if err := validation.ValidateDate("end date", end); err != nil {
		return err
	}
	e.update(func(q *Query) { q.EndDate = end })
	return nil
}

// SetSort задает поле и направление сортировки. Пустой order не меняет направление.
func (e *Engine) SetSort(field, order string) error {
	if order != "" && order != "asc" && order != "desc" {
		return fmt.Errorf("%w: sort order must be asc or desc, got %q", validation.ErrValidation, order)
	}
	e.update(func(q *Query) {
		if field != "" {
			q.SortBy = field
		}
		if order != "" {
			q.SortOrder = order
		}
	})
	return nil
}

// SetPageSize задает размер страницы
func (e *Engine) SetPageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: page size must be positive, got %d", validation.ErrValidation, size)
	}
	e.update(func(q *Query) { q.PageSize = size })
	return nil
}

// SetQuery заменяет все параметры разом, включая номер страницы
func (e *Engine) SetQuery(q Query) {
	e.mu.Lock()
	defer e.mu.Unlock()

	q = q.normalize()
	if q == e.query {
		return
	}
	e.query = q
	e.scheduleLocked()
}

// ResetFilters возвращает параметры по умолчанию одним изменением (один запрос)
func (e *Engine) ResetFilters() {
	e.SetQuery(DefaultQuery())
}

// SetPage переходит на страницу. Номер ограничивается известным числом страниц.
func (e *Engine) SetPage(page int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	page = max(page, 1)
	if pages := TotalPages(e.total, e.query.PageSize); e.loaded && pages > 0 {
		page = min(page, pages)
	}
	if page == e.query.Page {
		return
	}
	e.query.Page = page
	e.scheduleLocked()
}

// NextPage переходит на следующую страницу; false, если переход недоступен
func (e *Engine) NextPage() bool {
	return e.navigate(func(p Pagination) (int, bool) { return p.Page + 1, p.Next })
}

// PrevPage переходит на предыдущую страницу
func (e *Engine) PrevPage() bool {
	return e.navigate(func(p Pagination) (int, bool) { return p.Page - 1, p.Prev })
}

// FirstPage переходит на первую страницу
func (e *Engine) FirstPage() bool {
	return e.navigate(func(p Pagination) (int, bool) { return 1, p.First })
}

// LastPage переходит на последнюю страницу
func (e *Engine) LastPage() bool {
	return e.navigate(func(p Pagination) (int, bool) { return p.TotalPages, p.Last })
}

func (e *Engine) navigate(target func(Pagination) (int, bool)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	page, ok := target(Paginate(e.query.Page, e.query.PageSize, e.total))
	if !ok {
		return false
	}
	e.query.Page = page
	e.scheduleLocked()
	return true
}

// update применяет изменение фильтров; любое изменение, кроме страницы, возвращает на страницу 1
func (e *Engine) update(mutate func(q *Query)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.query
	mutate(&next)
	next = next.normalize()

	if next == e.query {
		return
	}
	if !next.filtersEqual(e.query) {
		next.Page = 1
	}
	e.query = next
	e.scheduleLocked()
}

// scheduleLocked откладывает запрос на Debounce, сбрасывая ранее запланированный
func (e *Engine) scheduleLocked() {
	if e.closed {
		return
	}
	e.stopTimerLocked()

	e.scheduleGen++
	gen := e.scheduleGen
	e.timer = time.AfterFunc(e.opts.Debounce, func() { e.fire(gen) })
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// fire выполняет отложенный запрос, если его не заменил более новый
func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.scheduleGen {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	ctx, seq, q := e.beginFetchLocked(e.ctx)
	e.mu.Unlock()

	_, _ = e.run(ctx, seq, q)
}

// Refresh выполняет запрос немедленно, отменяя отложенный и текущий
func (e *Engine) Refresh(ctx context.Context) (State, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return State{}, ErrClosed
	}
	e.stopTimerLocked()
	e.scheduleGen++

	fetchCtx, seq, q := e.beginFetchLocked(ctx)
	e.mu.Unlock()

	return e.run(fetchCtx, seq, q)
}

// beginFetchLocked отменяет текущий запрос и начинает новый с очередным номером
func (e *Engine) beginFetchLocked(parent context.Context) (context.Context, uint64, Query) {
	if e.cancelFetch != nil {
		e.cancelFetch()
	}

	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(e.ctx, cancel)
	e.cancelFetch = func() {
		stop()
		cancel()
	}

	e.seq++
	e.wg.Add(1)
	return ctx, e.seq, e.query
}

// run выполняет запрос и применяет результат, если он еще актуален
func (e *Engine) run(ctx context.Context, seq uint64, q Query) (State, error) {
	defer e.wg.Done()

	resp, err := e.api.ListFiles(ctx, q.Params())

	var links map[uuid.UUID]string
	if err == nil {
		links = e.loadLinks(ctx, resp.Files)
	}

	e.mu.Lock()
	if seq != e.seq || ctx.Err() != nil {
		// запрос заменен более новым или отменен
		state := e.stateLocked()
		e.mu.Unlock()
		return state, context.Canceled
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			state := e.stateLocked()
			e.mu.Unlock()
			return state, err
		}
		e.lastErr = err
		state := e.stateLocked()
		e.mu.Unlock()

		e.logger.Error("failed to fetch files", "error", err)
		e.notify(state)
		return state, err
	}

	e.files = make([]models.FileRecord, 0, len(resp.Files))
	for _, f := range resp.Files {
		e.files = append(e.files, models.FileRecordFromAPI(f))
	}
	e.total = resp.Total
	e.loaded = true
	e.lastErr = nil
	maps.Copy(e.links, links)

	// номер страницы вне диапазона после сужения выборки
	if e.query == q {
		e.clampPageLocked()
	}

	state := e.stateLocked()
	e.mu.Unlock()

	e.notify(state)
	return state, nil
}

// loadLinks подгружает сохраненные ссылки для файлов страницы
func (e *Engine) loadLinks(ctx context.Context, infos []pkgapi.FileInfo) map[uuid.UUID]string {
	if e.opts.Links == nil || len(infos) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(infos))
	for _, f := range infos {
		ids = append(ids, f.ID)
	}

	links, err := e.opts.Links.ListShareLinks(ctx, ids)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			e.logger.Warn("failed to load share links", "error", err)
		}
		return nil
	}
	return links
}

// clampPageLocked возвращает номер страницы в [1, TotalPages] после изменения total
// и планирует запрос последней страницы
func (e *Engine) clampPageLocked() {
	last := max(TotalPages(e.total, e.query.PageSize), 1)
	if e.query.Page <= last {
		return
	}
	e.query.Page = last
	e.scheduleLocked()
}

func (e *Engine) notify(state State) {
	if e.opts.OnChange != nil {
		e.opts.OnChange(state)
	}
}

func (e *Engine) stateLocked() State {
	return State{
		Query:      e.query,
		Files:      slices.Clone(e.files),
		Total:      e.total,
		Pagination: Paginate(e.query.Page, e.query.PageSize, e.total),
		Links:      maps.Clone(e.links),
		Err:        e.lastErr,
		Loaded:     e.loaded,
	}
}

// Close отменяет запросы и таймер и ждет завершения начатых запросов
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.stopTimerLocked()
	e.scheduleGen++
	e.mu.Unlock()

	e.cancelAll()
	e.wg.Wait()
}
