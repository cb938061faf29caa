package spincube

// Step runs one loop iteration: input poll, update, render. The running
// flag is only checked here, before any work, so a frame that has started
// always completes.
func (s *State) Step(in InputSource, clock Clock, p Presenter) error {
	if !s.running {
		return ErrStopped
	}
	if in != nil && in.ShouldStop() {
		s.running = false
	}
	s.Update(clock)
	return s.Render(p)
}

// Run calls Step until the input source asks to stop or a step fails.
func (s *State) Run(in InputSource, clock Clock, p Presenter) error {
	for s.running {
		if err := s.Step(in, clock, p); err != nil {
			return err
		}
	}
	return nil
}
