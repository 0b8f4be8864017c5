package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

func TestStoreDispatchNotifiesSubscribers(t *testing.T) {
	store := state.NewStore(baseSnapshot())

	var seen []int
	store.Subscribe(func(s state.Snapshot) { seen = append(seen, len(s.Departments)) })

	store.Dispatch(state.AddDepartment{Department: domain.Department{ID: "d3", Name: "Legal"}})
	store.Dispatch(state.DeleteDepartment{ID: "d3"})

	require.Equal(t, []int{3, 2}, seen)
	require.Len(t, store.Snapshot().Departments, 2)
}

func TestStoreReadersKeepTheirSnapshot(t *testing.T) {
	store := state.NewStore(baseSnapshot())
	reader := store.Snapshot()

	store.Dispatch(state.AddDepartment{Department: domain.Department{ID: "d3", Name: "Legal"}})

	require.Len(t, reader.Departments, 2, "a taken snapshot never changes under the reader")
	require.Len(t, store.Snapshot().Departments, 3)
}

func TestStoreReset(t *testing.T) {
	store := state.NewStore(state.Snapshot{})

	notified := false
	store.Subscribe(func(state.Snapshot) { notified = true })

	store.Reset(baseSnapshot())
	require.True(t, notified)
	require.Len(t, store.Snapshot().Departments, 2)
}
