package storage

import (
	"encoding/json"

	errgo "gopkg.in/errgo.v1"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errgo.New("record version mismatch")

// Stamp sets the current schema and codec versions on run.
func Stamp(run SweepRun) SweepRun {
	run.SchemaVersion = CurrentSchemaVersion
	run.CodecVersion = CurrentCodecVersion
	return run
}

func EncodeSweep(run SweepRun) ([]byte, error) {
	data, err := json.Marshal(run)
	if err != nil {
		return nil, errgo.Notef(err, "encode sweep %s", run.ID)
	}
	return data, nil
}

func DecodeSweep(data []byte) (SweepRun, error) {
	var run SweepRun
	if err := json.Unmarshal(data, &run); err != nil {
		return SweepRun{}, errgo.Notef(err, "decode sweep")
	}
	if err := checkVersion(run); err != nil {
		return SweepRun{}, err
	}
	return run, nil
}

func checkVersion(run SweepRun) error {
	if run.SchemaVersion != CurrentSchemaVersion || run.CodecVersion != CurrentCodecVersion {
		return errgo.WithCausef(nil, ErrVersionMismatch, "sweep %s has schema %d codec %d",
			run.ID, run.SchemaVersion, run.CodecVersion)
	}
	return nil
}
