package mdl

import (
	"errors"
	"strings"
	"testing"
)

func TestFirstPass(t *testing.T) {
	tests := []struct {
		name        string
		cmds        []Command
		want        Plan
		wantAnimate bool
	}{
		{
			name: "still image",
			cmds: []Command{cmd(OpBox, nums(0, 0, 0, 1, 1, 1)...)},
			want: Plan{Frames: 1, Basename: DefaultBasename},
		},
		{
			name: "single frame declared",
			cmds: []Command{cmd(OpFrames, Num(1)), cmd(OpBasename, Name("x"))},
			want: Plan{Frames: 1, Basename: "x"},
		},
		{
			name:        "animation",
			cmds:        []Command{cmd(OpFrames, Num(10)), cmd(OpBasename, Name("spin")), knobCmd(OpVary, "k", 0, 9, 0, 1)},
			want:        Plan{Frames: 10, Basename: "spin"},
			wantAnimate: true,
		},
		{
			name:        "basename before frames",
			cmds:        []Command{cmd(OpBasename, Name("spin")), cmd(OpFrames, Num(3))},
			want:        Plan{Frames: 3, Basename: "spin"},
			wantAnimate: true,
		},
		{
			name:        "frames without basename",
			cmds:        []Command{cmd(OpFrames, Num(4))},
			want:        Plan{Frames: 4, Basename: DefaultBasename, DefaultName: true},
			wantAnimate: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstPass(tt.cmds)
			if err != nil {
				t.Fatalf("FirstPass() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FirstPass() = %+v, want %+v", got, tt.want)
			}
			if got.Animated() != tt.wantAnimate {
				t.Errorf("Animated() = %v, want %v", got.Animated(), tt.wantAnimate)
			}
		})
	}
}

func TestFirstPassVaryWithoutFrames(t *testing.T) {
	_, err := FirstPass([]Command{knobCmd(OpVary, "k", 0, 1, 0, 1)})
	if !errors.Is(err, ErrVaryWithoutFrames) {
		t.Fatalf("FirstPass() error = %v, want ErrVaryWithoutFrames", err)
	}
}

func TestFirstPassWarnsDefaultName(t *testing.T) {
	buf := captureLogger(t)
	if _, err := FirstPass([]Command{cmd(OpFrames, Num(2))}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "basename="+DefaultBasename) {
		t.Errorf("warning missing or without the name in effect: %q", out)
	}
}

func TestFirstPassInvalidFrames(t *testing.T) {
	for _, n := range []float64{0, -3, 2.5, MaxFrames + 1, 1e12} {
		_, err := FirstPass([]Command{cmd(OpFrames, Num(n))})
		if !errors.Is(err, ErrInvalidFrameCount) {
			t.Errorf("frames %g: error = %v, want ErrInvalidFrameCount", n, err)
		}
	}
	if plan, err := FirstPass([]Command{cmd(OpFrames, Num(MaxFrames))}); err != nil || plan.Frames != MaxFrames {
		t.Errorf("frames MaxFrames: plan = %+v, error = %v", plan, err)
	}
	var argErr *ArgumentError
	if _, err := FirstPass([]Command{cmd(OpFrames, Name("ten"))}); !errors.As(err, &argErr) {
		t.Errorf("frames \"ten\": error = %v, want *ArgumentError", err)
	}
}
