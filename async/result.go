package async

// Result is an Async outcome together with its position in the AsyncList.
type Result struct {
	Index int
	Data  any
	Err   error
}

func (res Result) Get() (any, error) {
	return res.Data, res.Err
}
