package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// progressPrinter renders "done/total" scan progress on the status stream.
// Update is safe to call from many goroutines.
type progressPrinter struct {
	w        io.Writer
	name     string
	mu       sync.Mutex
	total    int
	done     int
	started  time.Time
	updates  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func newProgressPrinter(w io.Writer, total int, name string) *progressPrinter {
	if total < 0 {
		total = 0
	}
	return &progressPrinter{
		w:       w,
		total:   total,
		name:    name,
		updates: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (p *progressPrinter) Start() {
	p.mu.Lock()
	p.started = time.Now()
	p.mu.Unlock()

	p.wg.Add(1)
	go p.loop()
}

// Update records that done of total probes finished. Updates may arrive out
// of order, so the highest count wins.
func (p *progressPrinter) Update(done, total int) {
	p.mu.Lock()
	if done > p.done {
		p.done = done
	}
	if total > p.total {
		p.total = total
	}
	p.mu.Unlock()

	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// Stop halts the refresh loop, prints the final line, and ends it. It is idempotent.
func (p *progressPrinter) Stop() {
	stopped := false
	p.stopOnce.Do(func() {
		close(p.stop)
		stopped = true
	})
	if !stopped {
		return
	}
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", 80))
	p.printLocked()
	fmt.Fprintln(p.w)
}

func (p *progressPrinter) loop() {
	defer p.wg.Done()
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.updates:
			p.print()
		case <-ticker.C:
			p.print()
		case <-p.stop:
			return
		}
	}
}

func (p *progressPrinter) print() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printLocked()
}

func (p *progressPrinter) printLocked() {
	percent := 100.0
	if p.total > 0 {
		percent = (float64(p.done) / float64(p.total)) * 100
	}
	elapsed := time.Duration(0)
	if !p.started.IsZero() {
		elapsed = time.Since(p.started).Truncate(time.Second)
	}

	line := fmt.Sprintf("\r[%s] Progress: %d/%d (%.1f%%) Elapsed:%s",
		p.name, p.done, p.total, percent, elapsed)
	fmt.Fprint(p.w, line)
}
