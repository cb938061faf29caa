package spincube

import "quarkcube/quark"

// Update paces the loop against clock, advances the rotation and
// re-projects every vertex, overwriting the previous frame's results.
// A nil clock disables pacing.
func (s *State) Update(clock Clock) {
	if clock != nil {
		s.pacer.Wait(clock)
	}

	s.Rotation.Advance(s.cfg.RotationStep)

	prevSkipped := s.skipped
	s.skipped = 0

	if s.mesh.IsPointCloud() {
		for i, v := range s.mesh.Vertices {
			p, ok := s.project(v)
			s.points[i] = p
			s.visible[i] = ok
			if !ok {
				s.skipped++
			}
		}
	} else {
		for i := range s.mesh.Faces {
			verts := s.mesh.FaceVertices(i)
			var tri Triangle
			for j, v := range verts {
				tri.Points[j], tri.Visible[j] = s.project(v)
				if !tri.Visible[j] {
					s.skipped++
				}
			}
			s.triangles[i] = tri
		}
	}

	if s.skipped > 0 && prevSkipped == 0 {
		quark.Logger().Debug("vertices skipped at projection plane",
			"frame", s.frame,
			"skipped", s.skipped,
		)
	}
}
