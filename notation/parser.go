package notation

import (
	"container/list"
	"sync"

	"github.com/tonalab/tonal/pitch"
)

// DefaultCacheSize bounds the default parser's memoization cache.
const DefaultCacheSize = 1024

type cacheEntry struct {
	key   string
	value pitch.Pitch
	err   error
}

// Parser memoizes parse results, failures included, in a bounded LRU
// cache keyed by the exact input text. Safe for concurrent use.
type Parser struct {
	mu    sync.Mutex
	limit int
	order *list.List // front is most recently used
	cache map[string]*list.Element
}

// NewParser returns a parser with the given cache capacity. Sizes below
// one fall back to DefaultCacheSize.
func NewParser(cacheSize int) *Parser {
	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	return &Parser{
		limit: cacheSize,
		order: list.New(),
		cache: make(map[string]*list.Element, cacheSize),
	}
}

// Note parses note text into a pitch class or note.
func (pr *Parser) Note(text string) (pitch.Pitch, error) {
	return pr.lookup("n\x00"+text, text, parseNote)
}

// Interval parses interval shorthand.
func (pr *Parser) Interval(text string) (pitch.Pitch, error) {
	return pr.lookup("i\x00"+text, text, parseInterval)
}

// Any tries the note grammar first and falls back to the interval
// grammar, for contexts accepting either.
func (pr *Parser) Any(text string) (pitch.Pitch, error) {
	if p, err := pr.Note(text); err == nil {
		return p, nil
	}
	return pr.Interval(text)
}

// Len reports how many results are currently cached.
func (pr *Parser) Len() int {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.order.Len()
}

func (pr *Parser) lookup(key, text string, parse func(string) (pitch.Pitch, error)) (pitch.Pitch, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if el, ok := pr.cache[key]; ok {
		pr.order.MoveToFront(el)
		e := el.Value.(*cacheEntry)
		return e.value, e.err
	}

	p, err := parse(text)
	pr.cache[key] = pr.order.PushFront(&cacheEntry{key: key, value: p, err: err})
	if pr.order.Len() > pr.limit {
		oldest := pr.order.Back()
		pr.order.Remove(oldest)
		delete(pr.cache, oldest.Value.(*cacheEntry).key)
	}
	return p, err
}

var defaultParser = NewParser(DefaultCacheSize)

// SetDefaultCacheSize replaces the shared parser with one of the given
// capacity, dropping whatever was cached. Meant for process startup,
// not for concurrent reconfiguration.
func SetDefaultCacheSize(n int) {
	defaultParser = NewParser(n)
}

// Note parses note text with the shared default parser.
func Note(text string) (pitch.Pitch, error) { return defaultParser.Note(text) }

// Interval parses interval shorthand with the shared default parser.
func Interval(text string) (pitch.Pitch, error) { return defaultParser.Interval(text) }

// Any parses either grammar with the shared default parser.
func Any(text string) (pitch.Pitch, error) { return defaultParser.Any(text) }
