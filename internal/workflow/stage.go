package workflow

// Stage is one of the five fixed states an installation project passes
// through. The numeric values are stored as-is and define the total order.
type Stage int

const (
	StageRequirements Stage = 1
	StageSurvey       Stage = 2
	StageConfirmation Stage = 3
	StageInstallation Stage = 4
	StageHandover     Stage = 5
)

// StageInfo is presentation metadata for a stage. It carries no business-rule
// weight beyond the completion percentage shown in the UI.
type StageInfo struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

var stageTable = map[Stage]StageInfo{
	StageRequirements: {Label: "Requirements", Color: "blue", Percent: 20},
	StageSurvey:       {Label: "Survey", Color: "violet", Percent: 40},
	StageConfirmation: {Label: "Confirmation", Color: "yellow", Percent: 60},
	StageInstallation: {Label: "Installation", Color: "cyan", Percent: 80},
	StageHandover:     {Label: "Handover", Color: "green", Percent: 100},
}

// Stages lists all stages in workflow order.
func Stages() []Stage {
	return []Stage{StageRequirements, StageSurvey, StageConfirmation, StageInstallation, StageHandover}
}

func (s Stage) Valid() bool {
	_, ok := stageTable[s]
	return ok
}

// IsTerminal reports whether the stage completes the project. isCompleted is
// always derived from this, never set independently.
func (s Stage) IsTerminal() bool {
	return s == StageHandover
}

func (s Stage) Label() string {
	return s.Info().Label
}

func (s Stage) Percent() int {
	return s.Info().Percent
}

func (s Stage) Info() StageInfo {
	if info, ok := stageTable[s]; ok {
		return info
	}
	return StageInfo{Label: "Unknown", Color: "gray", Percent: 0}
}

// CanTransition applies the ordering rule: a move is accepted only if the
// target is the terminal stage (always reachable as a direct jump) or the move
// is a single step forward or backward.
func CanTransition(from, to Stage) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if to == StageHandover {
		return true
	}
	delta := int(to) - int(from)
	return delta >= -1 && delta <= 1
}
