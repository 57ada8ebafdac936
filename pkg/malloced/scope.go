package malloced

// Scope takes ownership of p for the duration of fn and frees it on every
// exit path. If fn panics the memory is freed before the panic continues.
// A nil p returns ErrNullPointer without calling fn.
//
// fn must not retain the pointer it receives.
func Scope[T any](p *T, fn func(*T) error) error {
	b, err := FromRaw(p)
	if err != nil {
		return err
	}
	defer b.Free()
	return fn(b.Get())
}
