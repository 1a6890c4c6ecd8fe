package text

import "golang.org/x/text/unicode/bidi"

// Direction is the visual direction of a text run.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// Run is a contiguous span of text with a uniform direction.
type Run struct {
	// Text is the run's content.
	Text string
	// Start and End are byte offsets into the original string.
	Start, End int
	// Direction is the resolved direction of the run.
	Direction Direction
	// Level is the resolved bidi embedding level (even LTR, odd RTL).
	Level int
}

// SegmentString splits a string into direction-uniform runs using the
// Unicode bidirectional algorithm with a neutral base direction.
func SegmentString(s string) []Run {
	return segment(s, DirectionLTR)
}

// SegmentStringRTL splits a string into runs with a right-to-left base
// direction.
func SegmentStringRTL(s string) []Run {
	return segment(s, DirectionRTL)
}

func segment(s string, base Direction) []Run {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	levels := computeBidiLevels(s, base, len(runes))
	return buildRuns(s, runes, levels)
}

// computeBidiLevels resolves a bidi level per rune.
func computeBidiLevels(s string, base Direction, runeCount int) []int {
	levels := make([]int, runeCount)

	var defaultDir bidi.Direction
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	} else {
		defaultDir = bidi.Neutral
	}

	p := bidi.Paragraph{}
	_, _ = p.SetString(s, bidi.DefaultDirection(defaultDir))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		runLevel := 0
		if run.Direction() == bidi.RightToLeft {
			runLevel = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = runLevel
		}
	}

	return levels
}

// buildRuns groups consecutive runes of equal level into runs.
func buildRuns(s string, runes []rune, levels []int) []Run {
	byteOffsets := computeByteOffsets(s, runes)

	runs := make([]Run, 0, 4)
	currentLevel := levels[0]
	runStart := 0

	for i := 1; i < len(runes); i++ {
		if levels[i] == currentLevel {
			continue
		}
		runs = append(runs, makeRun(s, byteOffsets, runStart, i, currentLevel))
		runStart = i
		currentLevel = levels[i]
	}
	runs = append(runs, makeRun(s, byteOffsets, runStart, len(runes), currentLevel))

	return runs
}

func computeByteOffsets(s string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += len(string(r))
	}
	offsets[len(runes)] = len(s)
	return offsets
}

func makeRun(s string, byteOffsets []int, startRune, endRune, level int) Run {
	startByte := byteOffsets[startRune]
	endByte := byteOffsets[endRune]

	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}

	return Run{
		Text:      s[startByte:endByte],
		Start:     startByte,
		End:       endByte,
		Direction: dir,
		Level:     level,
	}
}
