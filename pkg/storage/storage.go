package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/admpub/charting/pkg/charting"
)

const (
	KindDual    = `dual`
	KindCluster = `cluster`
)

// Record is a chart request saved under a name. Body holds the JSON encoded
// charting.ChartRequest or charting.ClusterRequest, depending on Kind.
type Record struct {
	Name    string    `db:"Name" json:"name"`
	Kind    string    `db:"Kind" json:"kind"`
	Body    string    `db:"Body" json:"body"`
	Created time.Time `db:"Created" json:"created"`
}

func NewDualRecord(name string, req charting.ChartRequest) (Record, error) {
	return newRecord(name, KindDual, req)
}

func NewClusterRecord(name string, req charting.ClusterRequest) (Record, error) {
	return newRecord(name, KindCluster, req)
}

func newRecord(name, kind string, req interface{}) (Record, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Kind: kind, Body: string(b), Created: time.Now()}, nil
}

// Chart decodes the saved request and builds its chart.
func (r Record) Chart(options ...charting.ScatterOption) (*charting.Chart, error) {
	switch r.Kind {
	case KindDual:
		var req charting.ChartRequest
		if err := json.Unmarshal([]byte(r.Body), &req); err != nil {
			return nil, err
		}
		return charting.BuildDualSeries(req), nil
	case KindCluster:
		var req charting.ClusterRequest
		if err := json.Unmarshal([]byte(r.Body), &req); err != nil {
			return nil, err
		}
		return req.Build(options...)
	default:
		return nil, fmt.Errorf(`%w: %q`, ErrUnknownKind, r.Kind)
	}
}

type Storager interface {
	// Save inserts or replaces the record with the same name.
	Save(Record) error
	Get(name string) (Record, error)
	List(limit int) ([]Record, error)
	Delete(name string) error
	Close()
}

type Constructor func(*url.URL) (Storager, error)

var storagers = map[string]Constructor{}

func Register(name string, function Constructor) {
	storagers[name] = function
}

var (
	ErrUnsupported = errors.New(`unsuppored storage`)
	ErrNotFound    = errors.New(`record not found`)
	ErrUnknownKind = errors.New(`unknown chart kind`)
)

// New opens a storager from a DSN such as `memory` or `duckdb://./data/`.
// A bare name without `://` selects the driver with default settings.
func New(dsn string) (Storager, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	name := u.Scheme
	if len(name) == 0 {
		name = dsn
		u = nil
	}
	fn, ok := storagers[name]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnsupported, name)
	}
	return fn(u)
}
