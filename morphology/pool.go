package morphology

import (
	"io"
	"sync"
)

// Pool shares non-reentrant tokenizers across goroutines. Each Analyze call
// borrows an idle instance, or builds a new one when none is idle, and gives
// it back afterwards. At most size instances are kept idle; the rest are
// closed on release.
type Pool struct {
	newFn  func() (Tokenizer, error)
	size   int
	mu     sync.Mutex
	idle   []Tokenizer
	closed bool
}

// NewPool builds the first instance eagerly so construction errors surface
// immediately.
func NewPool(size int, newFn func() (Tokenizer, error)) (*Pool, error) {
	if size < 1 {
		size = 1
	}
	first, err := newFn()
	if err != nil {
		return nil, err
	}
	return &Pool{
		newFn: newFn,
		size:  size,
		idle:  []Tokenizer{first},
	}, nil
}

func (p *Pool) Analyze(field, text string) ([]Token, error) {
	t, err := p.get()
	if err != nil {
		return nil, err
	}
	defer p.put(t)
	return t.Analyze(field, text)
}

func (p *Pool) get() (Tokenizer, error) {
	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		t := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return t, nil
	}
	p.mu.Unlock()
	return p.newFn()
}

func (p *Pool) put(t Tokenizer) {
	if b, ok := t.(interface{ Broken() bool }); ok && b.Broken() {
		closeTokenizer(t)
		return
	}
	p.mu.Lock()
	if !p.closed && len(p.idle) < p.size {
		p.idle = append(p.idle, t)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	closeTokenizer(t)
}

// Close closes the idle instances. Instances in use are closed when released.
func (p *Pool) Close() error {
	p.mu.Lock()
	idle := p.idle
	p.idle = nil
	p.closed = true
	p.mu.Unlock()

	var first error
	for _, t := range idle {
		if err := closeTokenizer(t); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func closeTokenizer(t Tokenizer) error {
	if c, ok := t.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
