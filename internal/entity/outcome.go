package entity

type Result int

const (
	ResultContinue Result = iota
	ResultWin
	ResultDraw
)

func (that Result) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "continue"
	}
}

// Outcome is the state of a match after a move. Winner is set only for ResultWin.
type Outcome struct {
	Result Result
	Winner Mark
}

func (that Outcome) IsFinished() bool {
	return that.Result == ResultWin || that.Result == ResultDraw
}
