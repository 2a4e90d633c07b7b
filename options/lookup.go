package options

type TuningRange struct {
	Lower, Upper int
}

type Order string

const (
	Ascend  Order = "ASC"
	Descend Order = "DESC"
)

// LookupOptions narrows and orders the presets returned for a camera.
type LookupOptions struct {
	O  Order
	TR *TuningRange
}

func (lo *LookupOptions) SetOrder(o Order) *LookupOptions {
	lo.O = o
	return lo
}

// TuningRange keeps only tunings within [lower, upper].
func (lo *LookupOptions) TuningRange(lower, upper int) *LookupOptions {
	lo.TR = &TuningRange{Lower: lower, Upper: upper}
	return lo
}

func (lo *LookupOptions) Includes(tuning int) bool {
	if lo == nil || lo.TR == nil {
		return true
	}

	return tuning >= lo.TR.Lower && tuning <= lo.TR.Upper
}

func Lookup() *LookupOptions {
	return &LookupOptions{O: Ascend}
}
