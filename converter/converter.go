// Package converter is the surface exposed to callers of the engine: one
// object bundling a phonetic dictionary and a Bijoy codec, with a result
// cache in front.
//
// The package-level functions use the builtin dictionary of package avrodict,
// which is loaded on first use.
package converter

import (
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/avro"
	"github.com/npillmayer/avro/avrodict"
	"github.com/npillmayer/avro/bijoy"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avro.converter'
func tracer() tracing.Trace {
	return tracing.Select("avro.converter")
}

// DefaultCacheSize is the number of results cached by default.
const DefaultCacheSize = 128

// Options configure a Converter.
type Options struct {
	// CacheSize is the maximum number of cached results. 0 disables the cache,
	// a negative value selects DefaultCacheSize.
	CacheSize int
}

// ParseOptions select the steps of Parse.
type ParseOptions struct {
	Bijoy      bool // convert the Bengali result to Bijoy
	RemapWords bool // apply whole-word exceptions
}

// ReverseOptions select the steps of Reverse.
type ReverseOptions struct {
	FromBijoy  bool // input is Bijoy text, convert it to Unicode first
	RemapWords bool // apply whole-word exceptions
}

type op uint8

const (
	opParse op = iota
	opLegacy
	opUnicode
	opReverse
)

type cacheKey struct {
	op    op
	flags uint8
	text  string
}

// Converter performs phonetic and legacy conversions. It is safe for
// concurrent use.
type Converter struct {
	dict  *avro.Dictionary
	codec *bijoy.Codec // nil without glyph table
	cache *lru.Cache[cacheKey, string]
}

// New creates a converter. table may be nil, in which case Bijoy conversions
// leave their input unchanged.
func New(dict *avro.Dictionary, table *bijoy.Table, opts Options) *Converter {
	c := &Converter{dict: dict}
	if table != nil {
		c.codec = bijoy.NewCodec(table)
	}
	size := opts.CacheSize
	if size < 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		c.cache, _ = lru.New[cacheKey, string](size)
	}
	return c
}

var defaultConverter struct {
	once sync.Once
	conv *Converter
	err  error
}

// Default returns the converter for the builtin dictionary.
func Default() (*Converter, error) {
	defaultConverter.once.Do(func() {
		dict, table, err := avrodict.Builtin()
		if err != nil {
			defaultConverter.err = err
			return
		}
		defaultConverter.conv = New(dict, table, Options{CacheSize: DefaultCacheSize})
	})
	return defaultConverter.conv, defaultConverter.err
}

// Dictionary returns the phonetic dictionary of c.
func (c *Converter) Dictionary() *avro.Dictionary { return c.dict }

// Codec returns the Bijoy codec of c, or nil.
func (c *Converter) Codec() *bijoy.Codec { return c.codec }

// Parse transliterates Roman phonetic text to Bengali, optionally continuing
// to Bijoy. RemapWords affects the phonetic step only.
func (c *Converter) Parse(text string, opts ParseOptions) string {
	return c.cached(cacheKey{opParse, flags(opts.Bijoy, opts.RemapWords), text}, func() string {
		s := c.dict.Transliterate(text, opts.RemapWords)
		if opts.Bijoy {
			s = c.toLegacy(s)
		}
		return s
	})
}

// Transliterate converts Roman phonetic text to Bengali.
func (c *Converter) Transliterate(text string, remapWords bool) string {
	return c.Parse(text, ParseOptions{RemapWords: remapWords})
}

// ToLegacy converts Bengali Unicode text to Bijoy.
func (c *Converter) ToLegacy(text string) string {
	return c.cached(cacheKey{opLegacy, 0, text}, func() string {
		return c.toLegacy(text)
	})
}

// ToUnicode converts Bijoy text to Bengali Unicode.
func (c *Converter) ToUnicode(text string) string {
	return c.cached(cacheKey{opUnicode, 0, text}, func() string {
		return c.toUnicode(text)
	})
}

// Reverse converts Bengali text (Unicode, or Bijoy with FromBijoy) to a Roman
// phonetic spelling.
func (c *Converter) Reverse(text string, opts ReverseOptions) string {
	return c.cached(cacheKey{opReverse, flags(opts.FromBijoy, opts.RemapWords), text}, func() string {
		s := text
		if opts.FromBijoy {
			s = c.toUnicode(s)
		}
		return c.dict.Reverse(s, opts.RemapWords)
	})
}

// ParseAll parses texts concurrently. Results are in input order.
func (c *Converter) ParseAll(texts []string, opts ParseOptions) []string {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results
	}
	workers := min(runtime.GOMAXPROCS(0), len(texts))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.Parse(texts[i], opts)
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	tracer().Debugf("parsed %d texts with %d workers", len(texts), workers)
	return results
}

// CacheLen returns the number of cached results.
func (c *Converter) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// ClearCache drops all cached results.
func (c *Converter) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

func (c *Converter) toLegacy(text string) string {
	if c.codec == nil {
		return text
	}
	return c.codec.ToLegacy(text)
}

func (c *Converter) toUnicode(text string) string {
	if c.codec == nil {
		return text
	}
	return c.codec.ToUnicode(text)
}

func (c *Converter) cached(key cacheKey, compute func() string) string {
	if c.cache == nil {
		return compute()
	}
	if s, ok := c.cache.Get(key); ok {
		return s
	}
	s := compute()
	c.cache.Add(key, s)
	return s
}

func flags(a, b bool) uint8 {
	var f uint8
	if a {
		f |= 1
	}
	if b {
		f |= 2
	}
	return f
}
