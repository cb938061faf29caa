// Command framedump renders frames offline and writes snapshots as BMP files.
//
//	framedump -mode points -frames 120 -every 30 -out ./frames
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"quarkcube/quark"
	"quarkcube/tasks/spincube"

	"golang.org/x/image/bmp"
)

func main() {
	var (
		modeName string
		frames   int
		every    int
		out      string
		width    int
		height   int
	)
	flag.StringVar(&modeName, "mode", "mesh", "Geometry: mesh or points.")
	flag.IntVar(&frames, "frames", 60, "Number of frames to render.")
	flag.IntVar(&every, "every", 10, "Write every Nth frame.")
	flag.StringVar(&out, "out", "frames", "Output directory.")
	flag.IntVar(&width, "width", 800, "Frame width in pixels.")
	flag.IntVar(&height, "height", 600, "Frame height in pixels.")
	flag.Parse()

	mode, err := spincube.ParseMode(modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	files, err := dump(spincube.DefaultConfig(mode), width, height, frames, every, out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "framedump:", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

// simClock advances only when the pacer sleeps, so a dump reproduces the
// exact rotation sequence of a paced run without waiting for it.
type simClock struct {
	now uint64
}

func (c *simClock) NowMillis() uint64 { return c.now }
func (c *simClock) Sleep(ms uint64)   { c.now += ms }

// snapshotter writes every Nth presented frame into dir.
type snapshotter struct {
	dir   string
	every int
	n     int
	files []string
}

func (s *snapshotter) Present(buf *quark.ColorBuffer) error {
	s.n++
	if s.n%s.every != 0 {
		return nil
	}
	name := filepath.Join(s.dir, fmt.Sprintf("frame-%05d.bmp", s.n))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.files = append(s.files, name)
	return nil
}

func dump(cfg spincube.Config, w, h, frames, every int, dir string) ([]string, error) {
	if frames <= 0 || every <= 0 {
		return nil, fmt.Errorf("frames and every must be positive, got %d and %d", frames, every)
	}
	state, err := spincube.New(cfg, w, h)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	clock := &simClock{}
	snap := &snapshotter{dir: dir, every: every}
	for i := 0; i < frames; i++ {
		if err := state.Step(nil, clock, snap); err != nil {
			return snap.files, err
		}
	}
	return snap.files, nil
}
