package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attModel "yuvasabha_backend/internals/features/attendance/attendance/model"
)

// fakeStore keeps records in memory and can be primed to lose races, so the
// retry loop is exercised without a database.
type fakeStore struct {
	recs map[string]*attModel.AttendanceModel

	// Insert fails with ErrRecordRace this many times; each failure also
	// materializes the record, as if a concurrent toggle won the insert.
	insertRaces int

	// FlipStatus reports a lost race this many times; each failure also flips
	// the stored record, as if a concurrent toggle got there first.
	flipRaces int

	finds, inserts, flips int
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[string]*attModel.AttendanceModel)}
}

func tupleID(key TupleKey) string {
	mandal := "-"
	if key.MandalID != nil {
		mandal = key.MandalID.String()
	}
	return fmt.Sprintf("%s|%s|%s|%s", key.SabhaUserID, key.Day.Format("2006-01-02"), key.Context, mandal)
}

func (s *fakeStore) FindForDay(key TupleKey) (*attModel.AttendanceModel, error) {
	s.finds++
	rec, ok := s.recs[tupleID(key)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) Insert(rec *attModel.AttendanceModel) error {
	s.inserts++
	key := TupleKey{rec.AttendanceSabhaUserID, rec.AttendanceDay, rec.AttendanceContext, rec.AttendanceMandalID}
	if s.insertRaces > 0 {
		s.insertRaces--
		winner := *rec
		winner.AttendanceID = uuid.New()
		winner.AttendanceMarkedBy = uuid.New()
		s.recs[tupleID(key)] = &winner
		return ErrRecordRace
	}
	if _, exists := s.recs[tupleID(key)]; exists {
		return ErrRecordRace
	}
	rec.AttendanceID = uuid.New()
	cp := *rec
	s.recs[tupleID(key)] = &cp
	return nil
}

func (s *fakeStore) FlipStatus(id uuid.UUID, from, to attModel.AttendanceStatus, markedBy uuid.UUID) (bool, error) {
	s.flips++
	for _, rec := range s.recs {
		if rec.AttendanceID != id {
			continue
		}
		if s.flipRaces > 0 {
			s.flipRaces--
			rec.AttendanceStatus = rec.AttendanceStatus.Flip()
			return false, nil
		}
		if rec.AttendanceStatus != from {
			return false, nil
		}
		rec.AttendanceStatus = to
		rec.AttendanceMarkedBy = markedBy
		return true, nil
	}
	return false, nil
}

func testKey() TupleKey {
	mandalID := uuid.New()
	return TupleKey{
		SabhaUserID: uuid.New(),
		Day:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Context:     attModel.ContextMandal,
		MandalID:    &mandalID,
	}
}

func TestToggleLifecycle(t *testing.T) {
	store := newFakeStore()
	key := testKey()
	marker := uuid.New()

	rec, err := Toggle(store, key, marker)
	require.NoError(t, err)
	assert.Equal(t, attModel.StatusPresent, rec.AttendanceStatus)
	assert.Equal(t, marker, rec.AttendanceMarkedBy)
	assert.Len(t, store.recs, 1)

	rec, err = Toggle(store, key, marker)
	require.NoError(t, err)
	assert.Equal(t, attModel.StatusAbsent, rec.AttendanceStatus)
	assert.Len(t, store.recs, 1)

	rec, err = Toggle(store, key, marker)
	require.NoError(t, err)
	assert.Equal(t, attModel.StatusPresent, rec.AttendanceStatus)
	assert.Len(t, store.recs, 1)
}

func TestToggleUpdatesMarkedBy(t *testing.T) {
	store := newFakeStore()
	key := testKey()
	first := uuid.New()
	second := uuid.New()

	_, err := Toggle(store, key, first)
	require.NoError(t, err)

	rec, err := Toggle(store, key, second)
	require.NoError(t, err)
	assert.Equal(t, second, rec.AttendanceMarkedBy)
}

func TestToggleRetriesLostInsert(t *testing.T) {
	store := newFakeStore()
	store.insertRaces = 1
	key := testKey()

	// The concurrent winner created the record as Present, so our toggle
	// still counts: it retries and flips the winner's record to Absent.
	rec, err := Toggle(store, key, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, attModel.StatusAbsent, rec.AttendanceStatus)
	assert.Len(t, store.recs, 1)
	assert.Equal(t, 2, store.finds)
}

func TestToggleRetriesLostFlip(t *testing.T) {
	store := newFakeStore()
	key := testKey()

	_, err := Toggle(store, key, uuid.New())
	require.NoError(t, err)

	// A concurrent toggle flips Present->Absent between our read and update;
	// the retry re-reads Absent and flips it back to Present.
	store.flipRaces = 1
	rec, err := Toggle(store, key, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, attModel.StatusPresent, rec.AttendanceStatus)
	assert.Equal(t, 2, store.flips)
}

func TestToggleContentionExhaustsRetries(t *testing.T) {
	store := newFakeStore()
	store.insertRaces = toggleRetries
	store.flipRaces = toggleRetries
	key := testKey()

	_, err := Toggle(store, key, uuid.New())
	assert.ErrorIs(t, err, ErrToggleContention)
}
