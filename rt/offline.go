package rt

// OfflineRender is a non-RT convenience that fills out by repeatedly
// invoking ProcessBlock, handling a final partial block through an
// auxiliary full-sized buffer and a slice copy.
func (h *Handle) OfflineRender(out []float64) error {
	blockSize := h.plan.BlockSize
	var scratch []float64

	offset := 0
	for offset < len(out) {
		remaining := len(out) - offset
		if remaining >= blockSize {
			if err := h.ProcessBlock(out[offset : offset+blockSize]); err != nil {
				return err
			}
			offset += blockSize
			continue
		}

		if scratch == nil {
			scratch = make([]float64, blockSize)
		}
		if err := h.ProcessBlock(scratch); err != nil {
			return err
		}
		copy(out[offset:], scratch[:remaining])
		offset += remaining
	}

	return nil
}
