package querysync

import (
	"sync"
	"time"
)

const DefaultSearchDebounce = 450 * time.Millisecond

// Debouncer は検索語入力のcancel-and-restartデバウンス。
// Triggerのたびに前のタイマーを破棄して張り直す。
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger はdelay経過後にfnを1回だけ呼ぶ。呼ばれる前に再Triggerされたら前のfnは破棄。
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Flush は保留中のfnを即時実行する
func (d *Debouncer) Flush(fn func()) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	fn()
}

// Stop は保留中のfnを破棄する
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// OnSearchChange は検索語の変更を遅延反映する。
// 空文字（クリア）だけはデバウンスを通さず即時。
func (d *Debouncer) OnSearchChange(term string, fn func(term string)) {
	if term == "" {
		d.Flush(func() { fn("") })
		return
	}
	d.Trigger(func() { fn(term) })
}
