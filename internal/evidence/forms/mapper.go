package forms

import "fmt"

// PersistedFormType is the form type value stored in the evidence_form_type
// column.
type PersistedFormType string

const (
	PersistedMeeting                       PersistedFormType = "meeting"
	PersistedBoardMeeting                  PersistedFormType = "board_meeting"
	PersistedITLeadershipMeeting           PersistedFormType = "it_leadership_meeting"
	PersistedRiskCommitteeMeeting          PersistedFormType = "risk_committee_meeting"
	PersistedAccessRequest                 PersistedFormType = "access_request"
	PersistedWhistleblowerReport           PersistedFormType = "whistleblower_report"
	PersistedPenetrationTest               PersistedFormType = "penetration_test"
	PersistedRBACMatrix                    PersistedFormType = "rbac_matrix"
	PersistedInfrastructureInventory       PersistedFormType = "infrastructure_inventory"
	PersistedEmployeePerformanceEvaluation PersistedFormType = "employee_performance_evaluation"
	PersistedNetworkDiagram                PersistedFormType = "network_diagram"
	PersistedTabletopExercise              PersistedFormType = "tabletop_exercise"
)

// The two tables are written out separately and checked against each other
// at init so a form type added to one side cannot be forgotten on the other.
var toPersisted = map[FormType]PersistedFormType{
	FormTypeMeeting:                       PersistedMeeting,
	FormTypeBoardMeeting:                  PersistedBoardMeeting,
	FormTypeITLeadershipMeeting:           PersistedITLeadershipMeeting,
	FormTypeRiskCommitteeMeeting:          PersistedRiskCommitteeMeeting,
	FormTypeAccessRequest:                 PersistedAccessRequest,
	FormTypeWhistleblowerReport:           PersistedWhistleblowerReport,
	FormTypePenetrationTest:               PersistedPenetrationTest,
	FormTypeRBACMatrix:                    PersistedRBACMatrix,
	FormTypeInfrastructureInventory:       PersistedInfrastructureInventory,
	FormTypeEmployeePerformanceEvaluation: PersistedEmployeePerformanceEvaluation,
	FormTypeNetworkDiagram:                PersistedNetworkDiagram,
	FormTypeTabletopExercise:              PersistedTabletopExercise,
}

var toExternal = map[PersistedFormType]FormType{
	PersistedMeeting:                       FormTypeMeeting,
	PersistedBoardMeeting:                  FormTypeBoardMeeting,
	PersistedITLeadershipMeeting:           FormTypeITLeadershipMeeting,
	PersistedRiskCommitteeMeeting:          FormTypeRiskCommitteeMeeting,
	PersistedAccessRequest:                 FormTypeAccessRequest,
	PersistedWhistleblowerReport:           FormTypeWhistleblowerReport,
	PersistedPenetrationTest:               FormTypePenetrationTest,
	PersistedRBACMatrix:                    FormTypeRBACMatrix,
	PersistedInfrastructureInventory:       FormTypeInfrastructureInventory,
	PersistedEmployeePerformanceEvaluation: FormTypeEmployeePerformanceEvaluation,
	PersistedNetworkDiagram:                FormTypeNetworkDiagram,
	PersistedTabletopExercise:              FormTypeTabletopExercise,
}

// ToPersisted maps a catalog form type to its stored value. The input must
// be a valid FormType; construct it with ParseFormType at trust boundaries.
func ToPersisted(t FormType) PersistedFormType {
	return toPersisted[t]
}

// ToExternal maps a nullable stored value to its form type. nil maps to nil.
func ToExternal(p *PersistedFormType) *FormType {
	if p == nil {
		return nil
	}
	t, ok := toExternal[*p]
	if !ok {
		return nil
	}
	return &t
}

// ExternalOf maps a stored value to its form type, reporting whether the
// value is known.
func ExternalOf(p PersistedFormType) (FormType, bool) {
	t, ok := toExternal[p]
	return t, ok
}

// IsValid reports whether the stored value belongs to the catalog.
func (p PersistedFormType) IsValid() bool {
	_, ok := toExternal[p]
	return ok
}

func (p PersistedFormType) String() string { return string(p) }

// checkMappings verifies that both tables cover the whole catalog and are
// exact inverses of each other.
func checkMappings() error {
	if len(toPersisted) != len(allFormTypes) {
		return fmt.Errorf("form type mapping covers %d types, catalog has %d", len(toPersisted), len(allFormTypes))
	}
	if len(toExternal) != len(toPersisted) {
		return fmt.Errorf("persisted mapping has %d entries, external mapping has %d", len(toExternal), len(toPersisted))
	}
	for _, t := range allFormTypes {
		p, ok := toPersisted[t]
		if !ok {
			return fmt.Errorf("form type %q has no persisted value", t)
		}
		back, ok := toExternal[p]
		if !ok {
			return fmt.Errorf("persisted value %q has no form type", p)
		}
		if back != t {
			return fmt.Errorf("form type %q maps to %q which maps back to %q", t, p, back)
		}
	}
	return nil
}
