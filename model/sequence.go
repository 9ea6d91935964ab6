package model

// Stage is a point in the game sequence.
type Stage int

const (
	StageMenu Stage = iota
	StagePlaying
	StageEnd
)

// Sequence walks menu, each level in order, then the end screen.
type Sequence struct {
	stage  Stage
	level  int
	levels int
}

func NewSequence(levels int) *Sequence {
	return &Sequence{levels: levels}
}

func (s *Sequence) Stage() Stage { return s.stage }
func (s *Sequence) Level() int   { return s.level }

// Start leaves the menu for the first level.
func (s *Sequence) Start() {
	if s.stage != StageMenu {
		return
	}
	s.level = 0
	s.stage = StagePlaying
	if s.levels == 0 {
		s.stage = StageEnd
	}
}

// LevelComplete advances to the next level or the end screen. It reports
// whether a new level started.
func (s *Sequence) LevelComplete() bool {
	if s.stage != StagePlaying {
		return false
	}
	s.level++
	if s.level >= s.levels {
		s.stage = StageEnd
		return false
	}
	return true
}

// Restart goes from the end screen back to the first level.
func (s *Sequence) Restart() {
	if s.stage != StageEnd {
		return
	}
	s.stage = StageMenu
	s.Start()
}
