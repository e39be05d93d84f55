// Package anim assembles persisted frame images into an animated GIF.
//
// Frames are read in frame order, quantized onto the Plan 9 palette with
// Floyd-Steinberg error diffusion and written as a looping GIF.
//
//	a := anim.New(anim.WithDelay(5))
//	out, err := a.Assemble("spin", []string{"anim/spin000.png", "anim/spin001.png"})
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	_ "image/png" // frame decoding
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"golang.org/x/image/draw"
)

// ErrNoFrames is returned when there is nothing to assemble.
var ErrNoFrames = errors.New("anim: no frames to assemble")

// DefaultDelay is the delay between frames, in 100ths of a second.
const DefaultDelay = 3

// Option configures an Assembler.
type Option func(*options)

type options struct {
	output string
	delay  int
	logger *slog.Logger
}

// WithOutput sets the path of the assembled animation. By default it is
// "<basename>.gif" in the working directory.
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = path
	}
}

// WithDelay sets the delay between frames in 100ths of a second.
// Non-positive values keep the default.
func WithDelay(delay int) Option {
	return func(o *options) {
		if delay > 0 {
			o.delay = delay
		}
	}
}

// WithLogger sets the logger used to report the assembled animation.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Assembler writes GIF animations from frame files.
type Assembler struct {
	opts options
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Assembler{opts: o}
}

// Assemble decodes frames in the given order and writes them as one
// animation. It returns the path written.
func (a *Assembler) Assemble(basename string, frames []string) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}

	g := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, path := range frames {
		img, err := decodeFile(path)
		if err != nil {
			return "", fmt.Errorf("anim: frame %s: %w", path, err)
		}
		g.Image = append(g.Image, quantize(img))
		g.Delay = append(g.Delay, a.opts.delay)
	}

	out := a.opts.output
	if out == "" {
		out = basename + ".gif"
	}
	if err := writeGIF(out, g); err != nil {
		return "", err
	}
	a.opts.logger.Info("anim: animation assembled", "file", out, "frames", len(frames))
	return out, nil
}

// Assemble collects dir/<basename>NNN.png in frame order and assembles them
// with the given options.
func Assemble(dir, basename string, opts ...Option) (string, error) {
	frames, err := FrameFiles(dir, basename)
	if err != nil {
		return "", err
	}
	return New(opts...).Assemble(basename, frames)
}

// FrameFiles lists dir/<basename>NNN.png sorted by frame index.
func FrameFiles(dir, basename string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(basename) + `[0-9]{3,}\.png$`)

	var frames []string
	for _, e := range entries {
		if !e.IsDir() && re.MatchString(e.Name()) {
			frames = append(frames, filepath.Join(dir, e.Name()))
		}
	}
	// Frame numbers are zero padded, so equal-length names sort numerically.
	sort.Slice(frames, func(i, j int) bool {
		if len(frames[i]) != len(frames[j]) {
			return len(frames[i]) < len(frames[j])
		}
		return frames[i] < frames[j]
	})
	return frames, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	return img, err
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}

func writeGIF(path string, g *gif.GIF) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gif.EncodeAll(f, g)
}
