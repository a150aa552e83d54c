package nbt

import "github.com/delaneyj/toolbelt"

// maxPooledScratch keeps unusually long strings from pinning large buffers.
const maxPooledScratch = 4 << 10

var scratchPool = toolbelt.New(func() []byte { return make([]byte, 0, 256) })

func getScratch(n int) []byte {
	s := scratchPool.Get()
	if cap(s) < n {
		return make([]byte, n)
	}
	return s[:n]
}

func putScratch(s []byte) {
	if s == nil || cap(s) > maxPooledScratch {
		return
	}
	scratchPool.Put(s[:0])
}
