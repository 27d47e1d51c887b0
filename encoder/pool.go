package encoder

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// scratch holds the per-call working state of an encoding run.
// Casers are stateful and must not be shared between goroutines,
// which is why each scratch object carries its own one.
type scratch struct {
	locale language.Tag // locale the caser has been created for
	caser  cases.Caser  // lower-cases input text
	ready  bool         // caser has been initialized
	codes  []string     // codes of the current word
	out    bytes.Buffer // output under construction
}

// prepare readies a scratch object for a run with a given locale.
func (sc *scratch) prepare(locale language.Tag) {
	if !sc.ready || sc.locale != locale {
		sc.caser = cases.Lower(locale)
		sc.locale = locale
		sc.ready = true
	}
	sc.codes = sc.codes[:0]
	sc.out.Reset()
}

// maxPooledBufferCap limits the capacity of output buffers kept in the pool.
// Larger buffers are dropped on release.
const maxPooledBufferCap = 64 * 1024

// Scratch objects are short-lived. To avoid repeated allocation of
// buffers and casers we will pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &scratch{codes: make([]string, 0, 16)}
			return sc, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns a scratch object, prepared for locale.
func borrowScratch(locale language.Tag) *scratch {
	var sc *scratch
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow scratch object from pool: %v", err)
		sc = &scratch{}
	} else {
		sc = o.(*scratch)
	}
	sc.prepare(locale)
	return sc
}

// releaseScratch clears a scratch object and puts it back into the pool.
func releaseScratch(sc *scratch) {
	sc.codes = sc.codes[:0]
	if sc.out.Cap() > maxPooledBufferCap {
		sc.out = bytes.Buffer{}
	} else {
		sc.out.Reset()
	}
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, sc)
}
