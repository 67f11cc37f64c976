package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Stage
		to   Stage
		want bool
	}{
		{"one step forward", StageRequirements, StageSurvey, true},
		{"one step backward", StageConfirmation, StageSurvey, true},
		{"same stage", StageSurvey, StageSurvey, true},
		{"two steps forward rejected", StageRequirements, StageConfirmation, false},
		{"three steps forward rejected", StageRequirements, StageInstallation, false},
		{"two steps backward rejected", StageInstallation, StageSurvey, false},
		{"jump to handover from requirements", StageRequirements, StageHandover, true},
		{"jump to handover from survey", StageSurvey, StageHandover, true},
		{"handover to installation", StageHandover, StageInstallation, true},
		{"handover to confirmation rejected", StageHandover, StageConfirmation, false},
		{"invalid target", StageSurvey, Stage(9), false},
		{"invalid source", Stage(0), StageSurvey, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStageMetadata(t *testing.T) {
	assert.Equal(t, "Requirements", StageRequirements.Label())
	assert.Equal(t, "Handover", StageHandover.Label())

	wantPercents := map[Stage]int{
		StageRequirements: 20,
		StageSurvey:       40,
		StageConfirmation: 60,
		StageInstallation: 80,
		StageHandover:     100,
	}
	for stage, percent := range wantPercents {
		assert.Equal(t, percent, stage.Percent())
		assert.True(t, stage.Valid())
	}

	unknown := Stage(42)
	assert.False(t, unknown.Valid())
	assert.Equal(t, StageInfo{Label: "Unknown", Color: "gray", Percent: 0}, unknown.Info())
}

func TestIsTerminal(t *testing.T) {
	for _, s := range Stages() {
		assert.Equal(t, s == StageHandover, s.IsTerminal())
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	assert.Len(t, stages, 5)
	for i, s := range stages {
		assert.Equal(t, Stage(i+1), s)
	}
}
