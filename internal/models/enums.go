// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// enumSpec describes one wire enum. Values are the numbers used by the
// external trainer; names are what the API emits.
type enumSpec struct {
	kind   string
	names  map[int32]string
	values map[string]int32
}

func newEnumSpec(kind string, names map[int32]string) enumSpec {
	values := make(map[string]int32, len(names))
	for v, n := range names {
		values[n] = v
	}
	return enumSpec{kind: kind, names: names, values: values}
}

func (s enumSpec) String(v int32) string {
	if n, ok := s.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", s.kind, v)
}

func (s enumSpec) marshal(v int32) ([]byte, error) {
	n, ok := s.names[v]
	if !ok {
		return nil, fmt.Errorf("unknown %s value %d", s.kind, v)
	}
	return json.Marshal(n)
}

// unmarshal accepts either the enum name or its numeric value.
func (s enumSpec) unmarshal(data []byte) (int32, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return 0, fmt.Errorf("invalid %s: %w", s.kind, err)
		}
		v, ok := s.values[name]
		if !ok {
			return 0, fmt.Errorf("unknown %s %q", s.kind, name)
		}
		return v, nil
	}

	var v int32
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("invalid %s %s", s.kind, data)
	}
	if _, ok := s.names[v]; !ok {
		return 0, fmt.Errorf("unknown %s value %d", s.kind, v)
	}
	return v, nil
}

// TrainingStatus is the lifecycle state the external trainer records on a row.
type TrainingStatus int32

const (
	TrainingStatusUnclaimed  TrainingStatus = 1
	TrainingStatusProcessing TrainingStatus = 2
	TrainingStatusFinished   TrainingStatus = 3
)

var trainingStatusSpec = newEnumSpec("TrainingStatus", map[int32]string{
	1: "UNCLAIMED",
	2: "PROCESSING",
	3: "FINISHED",
})

func (s TrainingStatus) String() string               { return trainingStatusSpec.String(int32(s)) }
func (s TrainingStatus) MarshalJSON() ([]byte, error) { return trainingStatusSpec.marshal(int32(s)) }

func (s *TrainingStatus) UnmarshalJSON(data []byte) error {
	v, err := trainingStatusSpec.unmarshal(data)
	if err != nil {
		return err
	}
	*s = TrainingStatus(v)
	return nil
}

// DataSource identifies where the trainer reads examples from.
type DataSource int32

const DataSourceGridFS DataSource = 1

var dataSourceSpec = newEnumSpec("DataSource", map[int32]string{
	1: "GRIDFS",
})

func (d DataSource) String() string               { return dataSourceSpec.String(int32(d)) }
func (d DataSource) MarshalJSON() ([]byte, error) { return dataSourceSpec.marshal(int32(d)) }

func (d *DataSource) UnmarshalJSON(data []byte) error {
	v, err := dataSourceSpec.unmarshal(data)
	if err != nil {
		return err
	}
	*d = DataSource(v)
	return nil
}

// Algorithm is the ensemble method requested in a ForestConfig.
type Algorithm int32

const (
	AlgorithmBoosting     Algorithm = 1
	AlgorithmRandomForest Algorithm = 2
)

var algorithmSpec = newEnumSpec("Algorithm", map[int32]string{
	1: "BOOSTING",
	2: "RANDOM_FOREST",
})

func (a Algorithm) String() string               { return algorithmSpec.String(int32(a)) }
func (a Algorithm) MarshalJSON() ([]byte, error) { return algorithmSpec.marshal(int32(a)) }

func (a *Algorithm) UnmarshalJSON(data []byte) error {
	v, err := algorithmSpec.unmarshal(data)
	if err != nil {
		return err
	}
	*a = Algorithm(v)
	return nil
}

// Rescaling is applied to the summed tree outputs of a Forest.
type Rescaling int32

const (
	RescalingNone      Rescaling = 1
	RescalingAveraging Rescaling = 2
	RescalingLogOdds   Rescaling = 3
)

var rescalingSpec = newEnumSpec("Rescaling", map[int32]string{
	1: "NONE",
	2: "AVERAGING",
	3: "LOG_ODDS",
})

func (r Rescaling) String() string               { return rescalingSpec.String(int32(r)) }
func (r Rescaling) MarshalJSON() ([]byte, error) { return rescalingSpec.marshal(int32(r)) }

func (r *Rescaling) UnmarshalJSON(data []byte) error {
	v, err := rescalingSpec.unmarshal(data)
	if err != nil {
		return err
	}
	*r = Rescaling(v)
	return nil
}

// LossFunction selects the boosting loss.
type LossFunction int32

const (
	LossFunctionLogit                  LossFunction = 1
	LossFunctionLeastAbsoluteDeviation LossFunction = 2
	LossFunctionHuber                  LossFunction = 3
)

var lossFunctionSpec = newEnumSpec("LossFunction", map[int32]string{
	1: "LOGIT",
	2: "LEAST_ABSOLUTE_DEVIATION",
	3: "HUBER",
})

func (l LossFunction) String() string               { return lossFunctionSpec.String(int32(l)) }
func (l LossFunction) MarshalJSON() ([]byte, error) { return lossFunctionSpec.marshal(int32(l)) }

func (l *LossFunction) UnmarshalJSON(data []byte) error {
	v, err := lossFunctionSpec.unmarshal(data)
	if err != nil {
		return err
	}
	*l = LossFunction(v)
	return nil
}
