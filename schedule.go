package mdl

import (
	"maps"
	"math"
)

// Schedule holds, for every frame, the value of each knob varied at that
// frame. A knob outside all of its vary windows is absent from the frame.
// A Schedule is read-only once built.
type Schedule []map[string]float64

// Len returns the number of frames.
func (s Schedule) Len() int {
	return len(s)
}

// Value returns the value of knob at frame, and false when the knob is not
// varied at that frame.
func (s Schedule) Value(frame int, knob string) (float64, bool) {
	if frame < 0 || frame >= len(s) {
		return 0, false
	}
	v, ok := s[frame][knob]
	return v, ok
}

// Frame returns a copy of the knob values of one frame.
func (s Schedule) Frame(frame int) map[string]float64 {
	if frame < 0 || frame >= len(s) {
		return map[string]float64{}
	}
	return maps.Clone(s[frame])
}

// SecondPass computes the value of every varied knob for every frame.
//
// Each vary linearly interpolates its knob from start_value at start_frame
// to end_value at end_frame, both ends inclusive. Later vary commands
// overwrite earlier ones for the same knob and frame. A window with
// start_frame < 0, end_frame >= frames or end_frame <= start_frame returns a
// *VaryRangeError.
func SecondPass(cmds []Command, frames int) (Schedule, error) {
	if frames < 1 || frames > MaxFrames {
		return nil, ErrInvalidFrameCount
	}
	sched := make(Schedule, frames)
	for i := range sched {
		sched[i] = make(map[string]float64)
	}

	for i, cmd := range cmds {
		if cmd.Op != OpVary {
			continue
		}
		v, err := decodeVary(i, cmd)
		if err != nil {
			return nil, err
		}
		if v.startFrame < 0 || v.endFrame >= float64(frames) || v.endFrame <= v.startFrame {
			return nil, &VaryRangeError{Knob: v.knob, Start: v.startFrame, End: v.endFrame, Frames: frames}
		}

		first := int(math.Ceil(v.startFrame))
		last := int(math.Floor(v.endFrame))
		span := v.endFrame - v.startFrame
		for f := first; f <= last; f++ {
			t := (float64(f) - v.startFrame) / span
			sched[f][v.knob] = lerp(v.startValue, v.endValue, t)
		}
	}
	return sched, nil
}

// lerp is exact at both ends: lerp(a, b, 0) == a and lerp(a, b, 1) == b.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
