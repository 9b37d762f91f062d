package parallel

import (
	"fmt"
	"sync"
)

// Run calls fn once per slice, each call on its own goroutine, and
// returns when all of them have finished. A single slice runs on the
// calling goroutine.
//
// If any call panics, Run re-panics on the calling goroutine after every
// worker has stopped.
func Run(slices []Slice, fn func(worker int, s Slice)) {
	switch len(slices) {
	case 0:
		return
	case 1:
		fn(0, slices[0])
		return
	}

	var (
		wg      sync.WaitGroup
		panicMu sync.Mutex
		failure any
	)
	wg.Add(len(slices))
	for i, s := range slices {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicMu.Lock()
					if failure == nil {
						failure = fmt.Errorf("parallel: worker %d: %v", i, r)
					}
					panicMu.Unlock()
				}
			}()
			fn(i, s)
		}()
	}
	wg.Wait()

	if failure != nil {
		panic(failure)
	}
}
