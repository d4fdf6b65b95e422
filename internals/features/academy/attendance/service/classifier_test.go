// file: internals/features/academy/attendance/service/classifier_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academyops_backend/internals/features/academy/registry"
)

func stdSched() ResolvedDailySchedule {
	return ResolvedDailySchedule{
		Start:             540,  // 09:00
		End:               1080, // 18:00
		LunchStart:        720,
		LunchEnd:          780,
		FullCreditMinutes: 480,
	}
}

func logWith(code, name, in, out string) *registry.LogEntry {
	return &registry.LogEntry{
		StudentID:    "1001",
		StudentName:  "김철수",
		Date:         "20260105",
		StatusCode:   code,
		StatusName:   name,
		CheckInTime:  in,
		CheckOutTime: out,
	}
}

func TestClassifyDay_PriorDropoutRendersBlank(t *testing.T) {
	cls := ClassifyDay(logWith("01", "출석", "09:00", "18:00"), stdSched(), true)
	assert.Equal(t, DayBlank, cls.Category)
	assert.Zero(t, cls.NetMinutes)
	assert.Zero(t, cls.UncompletedMinutes)
	assert.Empty(t, cls.DisplayText)
	assert.Equal(t, "#efefef", cls.DisplayColor)
}

func TestClassifyDay_NoRecordIsFullMiss(t *testing.T) {
	cls := ClassifyDay(nil, stdSched(), false)
	assert.Equal(t, DayAbsent, cls.Category)
	assert.Zero(t, cls.NetMinutes)
	assert.Equal(t, 480, cls.UncompletedMinutes)
	assert.Equal(t, "-", cls.DisplayText)
}

func TestClassifyDay_DropoutBeatsEverything(t *testing.T) {
	// a 99 row with an absent label and valid timestamps is still a dropout
	cls := ClassifyDay(logWith("99", "결석", "09:00", "18:00"), stdSched(), false)
	assert.Equal(t, DayDropout, cls.Category)
	assert.Zero(t, cls.NetMinutes)
	assert.Zero(t, cls.UncompletedMinutes, "the dropout date itself credits nothing either way")
	assert.Equal(t, "중도탈락", cls.DisplayText)
}

func TestClassifyDay_AbsentByCodeAndByName(t *testing.T) {
	for _, entry := range []*registry.LogEntry{
		logWith("02", "", "09:00", "18:00"),
		logWith("01", "결석", "09:00", "18:00"),
	} {
		cls := ClassifyDay(entry, stdSched(), false)
		assert.Equal(t, DayAbsent, cls.Category)
		assert.Equal(t, 480, cls.UncompletedMinutes)
		assert.Equal(t, "결석", cls.DisplayText)
	}
}

func TestClassifyDay_ExcusedEarnsFullCreditWithoutTimestamps(t *testing.T) {
	for _, entry := range []*registry.LogEntry{
		logWith("", "공가", "", ""),
		logWith("06", "훈련휴가", "", ""),
		logWith("07", "공가", "", ""),
		logWith("09", "조퇴(인정)", "", ""),
	} {
		cls := ClassifyDay(entry, stdSched(), false)
		assert.Equal(t, DayExcused, cls.Category, "status %q/%q", entry.StatusCode, entry.StatusName)
		assert.Equal(t, 480, cls.NetMinutes)
		assert.Zero(t, cls.UncompletedMinutes)
		assert.Equal(t, entry.StatusName, cls.DisplayText)
	}
}

func TestClassifyDay_MissingTimestampIsZeroCredit(t *testing.T) {
	for _, entry := range []*registry.LogEntry{
		logWith("01", "출석", "", "18:00"),
		logWith("01", "출석", "09:00", ""),
		logWith("01", "출석", "900", "1800"), // check-in too short to parse
	} {
		cls := ClassifyDay(entry, stdSched(), false)
		assert.Equal(t, DayPresentIncomplete, cls.Category)
		assert.Zero(t, cls.NetMinutes, "partial timestamps earn zero, not partial credit")
		assert.Equal(t, 480, cls.UncompletedMinutes)
	}
}

func TestClassifyDay_PerfectDay(t *testing.T) {
	cls := ClassifyDay(logWith("01", "출석", "09:00", "18:00"), stdSched(), false)
	assert.Equal(t, DayPresentComplete, cls.Category)
	assert.Equal(t, 480, cls.NetMinutes)
	assert.Zero(t, cls.UncompletedMinutes)
	assert.Equal(t, "O", cls.DisplayText)
	assert.Equal(t, "#d9ead3", cls.DisplayColor)
}

func TestClassifyDay_GraceWindowSnaps(t *testing.T) {
	onTime := ClassifyDay(logWith("01", "출석", "09:00", "18:00"), stdSched(), false)
	inGrace := ClassifyDay(logWith("01", "출석", "09:10", "18:00"), stdSched(), false)
	assert.Equal(t, onTime.NetMinutes, inGrace.NetMinutes, "09:10 snaps to 09:00")

	outGrace := ClassifyDay(logWith("01", "출석", "09:00", "17:50"), stdSched(), false)
	assert.Equal(t, 480, outGrace.NetMinutes, "17:50 snaps to 18:00")

	late := ClassifyDay(logWith("01", "출석", "09:11", "18:00"), stdSched(), false)
	assert.Equal(t, 469, late.NetMinutes, "09:11 does not snap")
	assert.Equal(t, 11, late.UncompletedMinutes)
	assert.Equal(t, "09:11\n18:00", late.DisplayText)
	assert.Equal(t, "#fce8b2", late.DisplayColor)
}

func TestClassifyDay_RegistryConcatenatedTimes(t *testing.T) {
	cls := ClassifyDay(logWith("01", "출석", "0900", "1800"), stdSched(), false)
	assert.Equal(t, 480, cls.NetMinutes)
}

func TestClassifyDay_LunchSubtractedFromAdjustedWindow(t *testing.T) {
	// leaves at 12:30: attended window 09:00-12:30 overlaps lunch by 30
	cls := ClassifyDay(logWith("01", "출석", "09:00", "12:30"), stdSched(), false)
	assert.Equal(t, 180, cls.NetMinutes)
	assert.Equal(t, 300, cls.UncompletedMinutes)
}

func TestClassifyDay_InconsistentTimesClampToZero(t *testing.T) {
	cls := ClassifyDay(logWith("01", "출석", "18:00", "09:00"), stdSched(), false)
	assert.Zero(t, cls.NetMinutes)
	assert.Equal(t, 480, cls.UncompletedMinutes)
}

func TestClassifyDay_ConservationLaw(t *testing.T) {
	sched := stdSched()
	entries := []*registry.LogEntry{
		nil,
		logWith("02", "", "", ""),
		logWith("", "공가", "", ""),
		logWith("01", "출석", "", "18:00"),
		logWith("01", "출석", "09:00", "18:00"),
		logWith("01", "출석", "10:42", "16:03"),
		logWith("01", "출석", "13:00", "14:00"),
	}
	for i, entry := range entries {
		cls := ClassifyDay(entry, sched, false)
		assert.Equal(t, sched.FullCreditMinutes, cls.NetMinutes+cls.UncompletedMinutes, "case %d", i)
	}
}
