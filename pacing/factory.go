package pacing

// BlockTrain builds a protocol with a single periodic block pulse: level for
// duration seconds, every period seconds, first starting at offset. A limit
// of 0 repeats indefinitely; a positive limit delivers exactly that many
// pulses.
func BlockTrain(
	period, duration VTimeInSec,
	offset VTimeInSec,
	level float64,
	limit int,
) (*Protocol, error) {
	p := NewProtocol()

	err := p.Schedule(level, offset, duration, period, limit)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// BlockTrainAtBPM builds an indefinite block-pulse train delivered at the
// given rate in beats per minute.
func BlockTrainAtBPM(bpm float64, duration VTimeInSec) (*Protocol, error) {
	return BlockTrain(BPM2BCL(bpm), duration, 0, 1, 0)
}

// StepTrain builds a protocol of consecutive single steps: the first level
// holds from time 0 for the first duration, the second level follows
// immediately, and so on. The two slices must have the same, non-zero
// length and every duration must be positive.
func StepTrain(levels []float64, durations []VTimeInSec) (*Protocol, error) {
	if len(levels) != len(durations) {
		return nil, configErrorf(
			"level and duration series must have the same length, "+
				"got %d and %d", len(levels), len(durations))
	}

	if len(levels) == 0 {
		return nil, configErrorf("step train cannot be empty")
	}

	p := NewProtocol()

	var start VTimeInSec
	for i, level := range levels {
		err := p.Schedule(level, start, durations[i], 0, 0)
		if err != nil {
			return nil, err
		}

		start += durations[i]
	}

	return p, nil
}
