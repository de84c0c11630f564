package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
)

////////////////////////////////////////////////////////////////////////////////
// TUITION GROUPS — DTO
////////////////////////////////////////////////////////////////////////////////

type TuitionGroupCreateDTO struct {
	TuitionGroupCode          string          `json:"tuition_group_code" validate:"required,max=20"`
	TuitionGroupName          string          `json:"tuition_group_name" validate:"required,max=120"`
	TuitionGroupGroup         string          `json:"tuition_group_group" validate:"required,max=10"`
	TuitionGroupGrade         string          `json:"tuition_group_grade" validate:"required,max=20"`
	TuitionGroupMonthApply    string          `json:"tuition_group_month_apply" validate:"omitempty,max=60"`
	TuitionGroupDefaultAmount decimal.Decimal `json:"tuition_group_default_amount" validate:"required"`
}

// Update (partial)
type TuitionGroupUpdateDTO struct {
	TuitionGroupName          *string          `json:"tuition_group_name,omitempty" validate:"omitempty,max=120"`
	TuitionGroupGroup         *string          `json:"tuition_group_group,omitempty" validate:"omitempty,max=10"`
	TuitionGroupGrade         *string          `json:"tuition_group_grade,omitempty" validate:"omitempty,max=20"`
	TuitionGroupMonthApply    *string          `json:"tuition_group_month_apply,omitempty" validate:"omitempty,max=60"`
	TuitionGroupDefaultAmount *decimal.Decimal `json:"tuition_group_default_amount,omitempty"`
}

type TuitionGroupResponse struct {
	TuitionGroupID            uuid.UUID       `json:"tuition_group_id"`
	TuitionGroupCode          string          `json:"tuition_group_code"`
	TuitionGroupName          string          `json:"tuition_group_name"`
	TuitionGroupGroup         string          `json:"tuition_group_group"`
	TuitionGroupGrade         string          `json:"tuition_group_grade"`
	TuitionGroupMonthApply    string          `json:"tuition_group_month_apply"`
	TuitionGroupMonths        []int           `json:"tuition_group_months"`
	TuitionGroupDefaultAmount decimal.Decimal `json:"tuition_group_default_amount"`
	TuitionGroupCreatedAt     time.Time       `json:"tuition_group_created_at"`
	TuitionGroupUpdatedAt     time.Time       `json:"tuition_group_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (in TuitionGroupCreateDTO) ToModel() groupModel.TuitionGroup {
	return groupModel.TuitionGroup{
		TuitionGroupCode:          in.TuitionGroupCode,
		TuitionGroupName:          in.TuitionGroupName,
		TuitionGroupGroup:         in.TuitionGroupGroup,
		TuitionGroupGrade:         in.TuitionGroupGrade,
		TuitionGroupMonthApply:    in.TuitionGroupMonthApply,
		TuitionGroupDefaultAmount: in.TuitionGroupDefaultAmount,
	}
}

func ApplyTuitionGroupUpdate(m *groupModel.TuitionGroup, in TuitionGroupUpdateDTO) {
	if in.TuitionGroupName != nil {
		m.TuitionGroupName = *in.TuitionGroupName
	}
	if in.TuitionGroupGroup != nil {
		m.TuitionGroupGroup = *in.TuitionGroupGroup
	}
	if in.TuitionGroupGrade != nil {
		m.TuitionGroupGrade = *in.TuitionGroupGrade
	}
	if in.TuitionGroupMonthApply != nil {
		m.TuitionGroupMonthApply = *in.TuitionGroupMonthApply
	}
	if in.TuitionGroupDefaultAmount != nil {
		m.TuitionGroupDefaultAmount = *in.TuitionGroupDefaultAmount
	}
}

// ToTuitionGroupResponse also exposes the parsed month list so the admin UI
// does not re-implement the comma parsing.
func ToTuitionGroupResponse(m groupModel.TuitionGroup, months []int) TuitionGroupResponse {
	return TuitionGroupResponse{
		TuitionGroupID:            m.TuitionGroupID,
		TuitionGroupCode:          m.TuitionGroupCode,
		TuitionGroupName:          m.TuitionGroupName,
		TuitionGroupGroup:         m.TuitionGroupGroup,
		TuitionGroupGrade:         m.TuitionGroupGrade,
		TuitionGroupMonthApply:    m.TuitionGroupMonthApply,
		TuitionGroupMonths:        months,
		TuitionGroupDefaultAmount: m.TuitionGroupDefaultAmount,
		TuitionGroupCreatedAt:     m.TuitionGroupCreatedAt,
		TuitionGroupUpdatedAt:     m.TuitionGroupUpdatedAt,
	}
}
