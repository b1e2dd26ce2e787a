package rt

// ProcessBlockSafe is a last-resort wrapper around ProcessBlock: if
// anything on the hot path panics (a plug-in bug, an out-of-bounds slice
// access that should have been impossible), it recovers, fills out with
// zeros, and returns nil rather than letting the panic unwind into the
// host's audio callback.
func (h *Handle) ProcessBlockSafe(out []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zero(out)
			err = nil
		}
	}()

	return h.ProcessBlock(out)
}
