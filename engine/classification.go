package engine

import (
	"onboard/models"
	"onboard/models/catalog"
)

// classificationTable maps (instructor classification, step position) to the
// step classification used when building that step. Positions beyond the table
// fall back to SELF_CHECK.
var classificationTable = map[string]map[int]string{
	models.ClassificationNewGrad: {
		1: catalog.StepPMLed,
		2: catalog.StepPMLed,
		3: catalog.StepPMLed,
		4: catalog.StepSelfCheck,
		5: catalog.StepSelfCheck,
		6: catalog.StepDelayed,
		7: catalog.StepDelayed,
	},
	models.ClassificationExperienced: {
		1: catalog.StepPMLed,
		2: catalog.StepSelfCheck,
		3: catalog.StepSelfCheck,
		4: catalog.StepSkip,
		5: catalog.StepSelfCheck,
		6: catalog.StepDelayed,
		7: catalog.StepSkip,
	},
	models.ClassificationReturning: {
		1: catalog.StepSelfCheck,
		2: catalog.StepSkip,
		3: catalog.StepSkip,
		4: catalog.StepSkip,
		5: catalog.StepSelfCheck,
		6: catalog.StepSkip,
		7: catalog.StepSkip,
	},
}

// ClassifyStep resolves the step classification for an instructor
// classification and a 1-based step position.
func ClassifyStep(instructorClassification string, position int) string {
	if byPos, ok := classificationTable[instructorClassification]; ok {
		if cls, ok := byPos[position]; ok {
			return cls
		}
	}
	return catalog.StepSelfCheck
}
