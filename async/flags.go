package async

import "sync/atomic"

type flag struct {
	atomic.Uint32
}

func newFlag() *flag {
	return &flag{}
}

func (flg *flag) enabled() bool {
	return flg.Load() == 1
}

func (flg *flag) enable() (swapped bool) {
	return flg.CompareAndSwap(0, 1)
}
