package casemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgboard-io/orgboard/pkg/casemap"
)

func TestCamelKeys(t *testing.T) {
	in := map[string]any{
		"id":                      "d1",
		"reporting_department_id": "dep-2",
		"step_order":              float64(3),
		"lead_id":                 nil,
	}
	out := casemap.CamelKeys(in)
	require.Equal(t, map[string]any{
		"id":                    "d1",
		"reportingDepartmentId": "dep-2",
		"stepOrder":             float64(3),
		"leadId":                nil,
	}, out)
}

func TestSnakeKeys(t *testing.T) {
	in := map[string]any{
		"managerId":            nil,
		"maxManagerGradeLevel": 1,
		"name":                 "Legal",
	}
	out := casemap.SnakeKeys(in)
	require.Equal(t, map[string]any{
		"manager_id":              nil,
		"max_manager_grade_level": 1,
		"name":                    "Legal",
	}, out)
}

func TestNestedStructures(t *testing.T) {
	in := map[string]any{
		"team_id": "t1",
		"members": []any{
			map[string]any{"staff_id": "s1", "joined_at": "2025-01-01"},
			map[string]any{"staff_id": "s2", "joined_at": "2025-02-01"},
		},
		"meta": map[string]any{"created_by": map[string]any{"user_id": "u1"}},
	}
	out := casemap.CamelKeys(in)
	members, ok := out["members"].([]any)
	require.True(t, ok)
	require.Equal(t, map[string]any{"staffId": "s1", "joinedAt": "2025-01-01"}, members[0])
	meta, ok := out["meta"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, map[string]any{"userId": "u1"}, meta["createdBy"].(map[string]any))
}

func TestRoundTripSnakeFirst(t *testing.T) {
	in := map[string]any{
		"company_number_id": "n1",
		"assign_to_type":    "Staff",
		"staff_id":          nil,
		"line1":             "keeps digits",
		"nested": []any{
			map[string]any{"workflow_id": "w1", "step_order": float64(1)},
		},
	}
	require.Equal(t, in, casemap.SnakeKeys(casemap.CamelKeys(in)))
}

func TestRoundTripCamelFirst(t *testing.T) {
	in := map[string]any{
		"additionalFunctionIds": []any{"f1", "f2"},
		"primaryFunctionId":     "f1",
		"sopLink":               "https://example.com",
		"isComplianceTagged":    true,
	}
	require.Equal(t, in, casemap.CamelKeys(casemap.SnakeKeys(in)))
}

func TestDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"staff_id": "s1"}
	_ = casemap.CamelKeys(in)
	require.Equal(t, map[string]any{"staff_id": "s1"}, in)
}

func TestNilMap(t *testing.T) {
	require.Nil(t, casemap.CamelKeys(nil))
	require.Nil(t, casemap.SnakeKeys(nil))
}
