package ctrl

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Michael-A-Kuykendall/auxide/audiolog"
)

// Signal is a one-byte invariant ID emitted by the RT thread and consumed
// by the main thread.
type Signal byte

const (
	SigParamUpdateDelivered Signal = iota
	SigSampleBufferFilled
	SigVoiceAllocationBound
	SigGateTriggerHonored
	SigControlMsgProcessed
	SigRTCallbackClean
)

func (s Signal) String() string {
	switch s {
	case SigParamUpdateDelivered:
		return "PARAM_UPDATE_DELIVERED"
	case SigSampleBufferFilled:
		return "SAMPLE_BUFFER_FILLED"
	case SigVoiceAllocationBound:
		return "VOICE_ALLOCATION_BOUND"
	case SigGateTriggerHonored:
		return "GATE_TRIGGER_HONORED"
	case SigControlMsgProcessed:
		return "CONTROL_MSG_PROCESSED"
	case SigRTCallbackClean:
		return "RT_CALLBACK_CLEAN"
	default:
		return "UNKNOWN_SIGNAL"
	}
}

// ErrContractViolated indicates VerifyContract found one or more required
// signals missing from the drained batch.
var ErrContractViolated = errors.New("ctrl: contract violated")

// VerifyContract asserts that every signal in required appears at least
// once in drained. On failure it returns ErrContractViolated wrapped with
// the human-readable names of the missing signals.
func VerifyContract(drained []Signal, required []Signal) error {
	present := make(map[Signal]bool, len(drained))
	for _, s := range drained {
		present[s] = true
	}

	var missing []Signal
	for _, r := range required {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = s.String()
	}

	audiolog.Default().Error("contract violated", audiolog.F("missing", strings.Join(names, ", ")))

	return fmt.Errorf("%w: missing %s", ErrContractViolated, strings.Join(names, ", "))
}
