package record

// Surface is the logical target of one recording session.
//
// A surface owns exactly one Log, created empty at construction. It
// performs no drawing itself; it is the anchor the Engine is bound to,
// and the handle replay callers read the log from.
type Surface struct {
	width, height int
	log           *Log
}

// NewSurface creates a recording surface with an empty command log.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		log:    NewLog(),
	}
}

// Width implements Device.
func (s *Surface) Width() int { return s.width }

// Height implements Device.
func (s *Surface) Height() int { return s.height }

// CommandLog returns the surface's command log for replay.
func (s *Surface) CommandLog() *Log { return s.log }

// AddCommand appends a command to the surface's log.
// Only the recording Engine calls this during a session.
func (s *Surface) AddCommand(c Command) {
	s.log.Append(c)
}

// Replay plays the recorded log back onto p, bracketing it with the
// painter's Begin and End at the surface's dimensions. Any error from
// Begin, a command, or End is returned unmodified.
func (s *Surface) Replay(p Painter) error {
	if err := p.Begin(s.width, s.height); err != nil {
		return err
	}
	if err := s.log.Replay(p); err != nil {
		return err
	}
	return p.End()
}
