package ctrlport

import "sync"

// frameSize fits the largest request: sync, op, address, width, word.
const frameSize = 1 + 1 + 4 + 1 + 4

var frames = &sync.Pool{New: func() interface{} { return make([]byte, frameSize) }}

func getFrame() []byte {
	return frames.Get().([]byte)
}

func putFrame(b []byte) {
	clear(b)
	frames.Put(b[:frameSize])
}
