// Package countdown содержит именованные обратные счетчики секунд с общим интервалом.
package countdown

import (
	"sync"
	"time"
)

// DefaultInterval шаг счетчиков
const DefaultInterval = time.Second

// Timers набор именованных счетчиков.
// Пока хотя бы один счетчик больше нуля, работает ровно один ticker и уменьшает все на 1.
// Каждый счетчик останавливается на нуле независимо от остальных.
type Timers struct {
	counters map[string]int
	stop     chan struct{}
	interval time.Duration
	gen      uint64
	mu       sync.Mutex
}

// New создает набор счетчиков. interval <= 0 означает DefaultInterval.
func New(interval time.Duration) *Timers {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timers{
		counters: make(map[string]int),
		interval: interval,
	}
}

// Arm устанавливает значения счетчиков и перезапускает интервал.
// Предыдущий интервал останавливается до запуска нового.
func (t *Timers) Arm(values map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name, v := range values {
		t.counters[name] = max(v, 0)
	}
	t.restartLocked()
}

// Clear обнуляет указанные счетчики; без аргументов обнуляет все
func (t *Timers) Clear(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(names) == 0 {
		clear(t.counters)
	}
	for _, name := range names {
		delete(t.counters, name)
	}

	if !t.anyActiveLocked() {
		t.stopLocked()
	}
}

// Remaining возвращает оставшиеся секунды счетчика
func (t *Timers) Remaining(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counters[name]
}

// Tick выполняет один шаг вручную
func (t *Timers) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepLocked()
}

// Stop останавливает интервал, значения счетчиков сохраняются
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Timers) restartLocked() {
	t.stopLocked()
	if !t.anyActiveLocked() {
		return
	}

	t.gen++
	t.stop = make(chan struct{})
	go t.run(t.gen, t.stop)
}

func (t *Timers) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Timers) anyActiveLocked() bool {
	for _, v := range t.counters {
		if v > 0 {
			return true
		}
	}
	return false
}

func (t *Timers) stepLocked() {
	for name, v := range t.counters {
		if v > 0 {
			t.counters[name] = v - 1
		}
	}
	if !t.anyActiveLocked() {
		t.stopLocked()
	}
}

func (t *Timers) run(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			// интервал мог быть перезапущен, пока ждали блокировку
			if gen != t.gen || t.stop == nil {
				t.mu.Unlock()
				return
			}
			t.stepLocked()
			t.mu.Unlock()
		}
	}
}
