package gateway

import "github.com/ariefcatur/smartpos/internal/pos"

type Source string

const (
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
)

// Result membawa data beserta asalnya, supaya caller bisa membedakan mode
// degrade (cache) dari data segar (remote).
type Result[T pos.Record] struct {
	Source Source
	Data   []T
	// Err: penyebab jatuh ke cache. nil kalau remote memang tidak dikonfigurasi.
	Err error
}

// Degraded true kalau remote dikonfigurasi tapi gagal.
func (r Result[T]) Degraded() bool { return r.Source == SourceCache && r.Err != nil }
