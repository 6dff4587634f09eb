package checklist

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Stage identifies one of the four production checklist steps. The four
// stages are independent; any subset may be completed in any order.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageCut is the fabric cutting step.
	StageCut

	// StageSewing is the sewing/assembly step.
	StageSewing

	// StageFinishing is the finishing/trim step.
	StageFinishing

	// StageQualityCheck is the final quality inspection.
	StageQualityCheck
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:      "unknown",
		StageCut:          "cut",
		StageSewing:       "sewing",
		StageFinishing:    "finishing",
		StageQualityCheck: "quality_check",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageCut:          "cut",
		StageSewing:       "sewing",
		StageFinishing:    "finishing",
		StageQualityCheck: "quality_check",
	}
}

// ParseStage converts a stage name into a Stage. Unknown names fail with a
// value-invalid error; there is no fuzzy matching.
func ParseStage(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("%q is not a known checklist stage", s),
	)
}

// Validate checks that the Stage is one of the four defined steps.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%d is not a valid checklist stage", s),
		)
	}
	return nil
}

// String returns the wire name of the stage. Safe on invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AllStages returns the four stages in their conventional display order.
func AllStages() []Stage {
	return []Stage{StageCut, StageSewing, StageFinishing, StageQualityCheck}
}
