package queries

import "sync"

const subscriberBuffer = 4

// Feed keeps the latest published result and fans it out to subscribers.
// A slow subscriber loses its oldest buffered result, never the newest.
type Feed struct {
	mu     sync.RWMutex
	latest *Result
	subs   map[uint64]chan Result
	nextID uint64
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[uint64]chan Result)}
}

func (f *Feed) Publish(r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.latest = &r
	for _, ch := range f.subs {
		for {
			select {
			case ch <- r:
			default:
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Latest returns the last published result.
func (f *Feed) Latest() (Result, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.latest == nil {
		return Result{}, false
	}
	return *f.latest, true
}

// Subscribe returns a channel that receives every result published after the
// call, and a cancel func that closes it.
func (f *Feed) Subscribe() (<-chan Result, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan Result, subscriberBuffer)
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
}

func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
