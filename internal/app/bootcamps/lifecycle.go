package bootcamps

import (
	"errors"

	"go.uber.org/zap"
)

// Stage is the point a save has reached in the pipeline.
//
//	Pending → Validated → Sluggified → Geocoded → Persisted
//	Pending → Rejected
//	Sluggified → GeocodeFailed
//	any non-terminal stage → Failed
type Stage int

const (
	StagePending Stage = iota
	StageValidated
	StageSluggified
	StageGeocoded
	StagePersisted
	StageRejected
	StageGeocodeFailed
	StageFailed
)

var stageNames = [...]string{
	StagePending:       "pending",
	StageValidated:     "validated",
	StageSluggified:    "sluggified",
	StageGeocoded:      "geocoded",
	StagePersisted:     "persisted",
	StageRejected:      "rejected",
	StageGeocodeFailed: "geocode_failed",
	StageFailed:        "failed",
}

func (s Stage) String() string {
	if int(s) < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Terminal reports whether no further stage can follow s.
func (s Stage) Terminal() bool {
	switch s {
	case StagePersisted, StageRejected, StageGeocodeFailed, StageFailed:
		return true
	}
	return false
}

// SaveTrace records the stages a single save passed through.
type SaveTrace struct {
	Op     string
	Stages []Stage
	Err    error
}

func newTrace(op string) *SaveTrace {
	return &SaveTrace{Op: op, Stages: []Stage{StagePending}}
}

func (t *SaveTrace) advance(s Stage) {
	t.Stages = append(t.Stages, s)
}

// Final returns the last stage reached.
func (t *SaveTrace) Final() Stage {
	return t.Stages[len(t.Stages)-1]
}

// fail moves the trace to the terminal stage matching err.
func (t *SaveTrace) fail(err error) error {
	t.Err = err
	var ve *ValidationError
	var ge *GeocodingError
	switch {
	case errors.As(err, &ve):
		t.advance(StageRejected)
	case errors.As(err, &ge):
		t.advance(StageGeocodeFailed)
	default:
		t.advance(StageFailed)
	}
	return err
}

func (t *SaveTrace) log(logger *zap.Logger, name string) {
	stages := make([]string, len(t.Stages))
	for i, s := range t.Stages {
		stages[i] = s.String()
	}
	fields := []zap.Field{
		zap.String("op", t.Op),
		zap.String("bootcamp", name),
		zap.String("stage", t.Final().String()),
		zap.Strings("stages", stages),
	}
	if t.Err != nil {
		logger.Info("bootcamp save failed", append(fields, zap.Error(t.Err))...)
		return
	}
	logger.Debug("bootcamp saved", fields...)
}
