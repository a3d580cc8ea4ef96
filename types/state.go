package types

// GameState is one renderable unit of a replay: *BoardState or *PathState.
type GameState interface {
	Seq() int
	Heading() string
	Kind() string
	RawData() string
	gameState()
}

// BoardState is a window snapshot attached to an action.
type BoardState struct {
	Sequence   int
	Title      string
	Board      Board
	Highlights HighlightSet
	Mask       string // raw mask attribute, empty if absent
	Raw        string // raw window encoding
	ActionName string
}

func (s *BoardState) Seq() int        { return s.Sequence }
func (s *BoardState) Heading() string { return s.Title }
func (s *BoardState) Kind() string    { return "window" }
func (s *BoardState) RawData() string { return s.Raw }
func (*BoardState) gameState()        {}

// StepAttributes are the raw attributes captured from a STEP element.
// Empty strings mean the attribute was absent.
type StepAttributes struct {
	Path       string
	Symbol     string
	Position   string
	PrevPos    string
	Win        string
	FirstStep  string
	LastStep   string
	AngryBirds string
}

// PathState is a single piece movement with its precomputed rendering.
type PathState struct {
	Sequence   int
	Title      string
	Points     []PathPoint
	Rendering  string
	Raw        string
	ActionName string
	Step       StepAttributes
}

func (s *PathState) Seq() int        { return s.Sequence }
func (s *PathState) Heading() string { return s.Title }
func (s *PathState) Kind() string    { return "path" }
func (s *PathState) RawData() string { return s.Raw }
func (*PathState) gameState()        {}
