package spincube

import "fmt"

// Render draws the grid and one marker per visible projected vertex, then
// the overlay, hands the buffer to p and clears it for the next frame.
//
// Later writes win: markers cover the grid and the overlay covers markers.
func (s *State) Render(p Presenter) error {
	b := s.buf
	b.DrawDotGrid(s.cfg.GridSpacing, s.cfg.GridColor)

	size, c := s.cfg.MarkerSize, s.cfg.MarkerColor
	if s.mesh.IsPointCloud() {
		for i, pt := range s.points {
			if s.visible[i] {
				b.DrawMarker(pt, size, c)
			}
		}
	} else {
		for _, tri := range s.triangles {
			for j, pt := range tri.Points {
				if tri.Visible[j] {
					b.DrawMarker(pt, size, c)
				}
			}
		}
	}

	if s.overlay != nil {
		s.overlay(b)
	}

	s.frame++
	if p != nil {
		if err := p.Present(b); err != nil {
			return fmt.Errorf("present frame %d: %w", s.frame, err)
		}
	}
	b.Clear(s.cfg.Background)
	return nil
}
