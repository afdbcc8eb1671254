package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	attModel "yuvasabha_backend/internals/features/attendance/attendance/model"
	"yuvasabha_backend/internals/helpers/sabhadate"
)

// Each successful toggle performs exactly one Present<->Absent transition for
// its (member, day, context, mandal) tuple, even under concurrent calls. Lost
// races are retried: a losing insert re-reads the row the winner created and
// flips it; a losing flip re-reads the new state and flips from there.

const toggleRetries = 3

var (
	// ErrRecordRace is returned by stores when an insert hits the tuple's
	// unique index, meaning a concurrent toggle created the row first.
	ErrRecordRace = errors.New("attendance record already created concurrently")

	// ErrToggleContention means every retry lost its race.
	ErrToggleContention = errors.New("attendance toggle lost all retries")
)

// TupleKey identifies the single attendance row a toggle operates on.
// Day must already be canonical (midnight UTC).
type TupleKey struct {
	SabhaUserID uuid.UUID
	Day         time.Time
	Context     attModel.AttendanceContext
	MandalID    *uuid.UUID
}

// RecordStore is the persistence surface the toggle loop needs. The GORM
// implementation is below; tests drive the loop with an in-memory fake.
type RecordStore interface {
	// FindForDay returns the tuple's record, or nil when none exists.
	FindForDay(key TupleKey) (*attModel.AttendanceModel, error)
	// Insert creates the record; returns ErrRecordRace on a unique violation.
	Insert(rec *attModel.AttendanceModel) error
	// FlipStatus updates status from->to only if the row still holds "from".
	// Returns false when a concurrent toggle changed it first.
	FlipStatus(id uuid.UUID, from, to attModel.AttendanceStatus, markedBy uuid.UUID) (bool, error)
}

// Toggle moves the tuple's record one step through the Present<->Absent
// machine. A first-ever toggle creates the record as Present.
func Toggle(store RecordStore, key TupleKey, markedBy uuid.UUID) (*attModel.AttendanceModel, error) {
	for attempt := 0; attempt < toggleRetries; attempt++ {
		rec, err := store.FindForDay(key)
		if err != nil {
			return nil, err
		}

		if rec == nil {
			rec = &attModel.AttendanceModel{
				AttendanceSabhaUserID: key.SabhaUserID,
				AttendanceDay:         key.Day,
				AttendanceContext:     key.Context,
				AttendanceMandalID:    key.MandalID,
				AttendanceStatus:      attModel.StatusPresent,
				AttendanceMarkedBy:    markedBy,
			}
			err := store.Insert(rec)
			if err == nil {
				return rec, nil
			}
			if errors.Is(err, ErrRecordRace) {
				continue
			}
			return nil, err
		}

		next := rec.AttendanceStatus.Flip()
		ok, err := store.FlipStatus(rec.AttendanceID, rec.AttendanceStatus, next, markedBy)
		if err != nil {
			return nil, err
		}
		if ok {
			rec.AttendanceStatus = next
			rec.AttendanceMarkedBy = markedBy
			return rec, nil
		}
	}
	return nil, ErrToggleContention
}

/* ===================== GORM STORE ===================== */

type GormRecordStore struct {
	DB *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{DB: db}
}

func (s *GormRecordStore) FindForDay(key TupleKey) (*attModel.AttendanceModel, error) {
	start, end := sabhadate.DayRange(key.Day)

	q := s.DB.
		Where("attendance_sabha_user_id = ?", key.SabhaUserID).
		Where("attendance_day >= ? AND attendance_day < ?", start, end).
		Where("attendance_context = ?", key.Context)
	if key.MandalID != nil {
		q = q.Where("attendance_mandal_id = ?", *key.MandalID)
	} else {
		q = q.Where("attendance_mandal_id IS NULL")
	}

	var rec attModel.AttendanceModel
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GormRecordStore) Insert(rec *attModel.AttendanceModel) error {
	err := s.DB.Create(rec).Error
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrRecordRace
	}
	return err
}

func (s *GormRecordStore) FlipStatus(id uuid.UUID, from, to attModel.AttendanceStatus, markedBy uuid.UUID) (bool, error) {
	res := s.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_id = ? AND attendance_status = ?", id, from).
		Updates(map[string]interface{}{
			"attendance_status":    to,
			"attendance_marked_by": markedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
