package async

import (
	"errors"
)

// AsyncList groups several Async to await them together.
type AsyncList struct {
	asyncs []*Async
}

func NewAsyncList(asyncs ...*Async) *AsyncList {
	return &AsyncList{
		asyncs: asyncs,
	}
}

// Push appends the provided asyncs to the list
func (asl *AsyncList) Push(asyncs ...*Async) {
	asl.asyncs = append(asl.asyncs, asyncs...)
}

// Await waits for every command of the list and returns their results/errors respectively.
func (asl *AsyncList) Await() ([]any, error) {
	if len(asl.asyncs) == 0 {
		return nil, EmptyAwaitListError
	}
	data := make([]any, len(asl.asyncs))
	errs := make([]error, len(asl.asyncs))
	for i, as := range asl.asyncs {
		data[i], errs[i] = as.Get()
	}
	return data, errors.Join(errs...)
}

// AwaitIterator generates an iterator to iterate over the results in order of arrival.
// The channel is closed once every command of the list has been sent.
func (asl *AsyncList) AwaitIterator() (<-chan Result, error) {
	if len(asl.asyncs) == 0 {
		return nil, EmptyAwaitListError
	}
	results := make(chan Result, len(asl.asyncs))
	arrived := newCounter()
	total := uint32(len(asl.asyncs))
	for i, as := range asl.asyncs {
		go func() {
			data, err := as.Get()
			results <- Result{Index: i, Data: data, Err: err}
			if arrived.increment() == total {
				close(results)
			}
		}()
	}
	return results, nil
}
