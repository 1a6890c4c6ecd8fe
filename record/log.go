package record

// Log is an ordered, append-only sequence of commands.
//
// Order is semantically significant: a drawing command is rendered with
// whatever state was established by all preceding state commands in the
// same log. Commands cannot be removed, reordered, or altered once
// appended; filtering means building a new log from a copy of the
// sequence, never mutating one in place.
//
// A Log is not safe for concurrent use. It must not be appended to while
// a replay is in progress; replay a Snapshot instead if recording has to
// continue.
type Log struct {
	commands []Command
}

// NewLog creates an empty command log.
func NewLog() *Log {
	return &Log{commands: make([]Command, 0, 256)}
}

// Append adds a command to the end of the log.
// Ownership of the command transfers to the log.
func (l *Log) Append(c Command) {
	l.commands = append(l.commands, c)
}

// Len returns the number of commands in the log.
func (l *Log) Len() int {
	return len(l.commands)
}

// At returns the command at index i.
func (l *Log) At(i int) Command {
	return l.commands[i]
}

// Replay invokes each command's Replay against p, front to back.
// The first error aborts the replay and is returned unmodified; commands
// already replayed are not undone. Replay does not mutate the log, so a
// log can be replayed any number of times.
func (l *Log) Replay(p Painter) error {
	for _, c := range l.commands {
		if err := c.Replay(p); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a new log holding a point-in-time copy of the command
// sequence. Commands are immutable, so the copy shares them; appends to
// either log do not affect the other.
func (l *Log) Snapshot() *Log {
	commands := make([]Command, len(l.commands))
	copy(commands, l.commands)
	return &Log{commands: commands}
}
