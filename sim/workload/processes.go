// Package workload loads process lists for the simulators.
// Files are read through viant/afs, so any afs URL (local path, file://, mem://)
// works as a location. Both YAML and JSON documents are accepted: the content
// must be a sequence of process records.
package workload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"

	"github.com/framesim/framesim/sim"
)

// Loader reads process lists from storage.
type Loader struct {
	fs afs.Service
}

// NewLoader creates a Loader backed by the default afs service.
func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

// LoadProcesses reads, decodes and validates the process list at location.
// For the CPU strategy IDs are reassigned as 1..n in load order, overriding
// any id in the file.
func (l *Loader) LoadProcesses(ctx context.Context, location string, strategy sim.Strategy) ([]sim.Process, error) {
	location = url.Normalize(location, file.Scheme)
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("reading process file %s: %w", location, err)
	}
	procs, err := ParseProcesses(data, strategy)
	if err != nil {
		return nil, fmt.Errorf("process file %s: %w", location, err)
	}
	logrus.Debugf("loaded %d processes from %s", len(procs), location)
	return procs, nil
}

// LoadProcesses is a convenience wrapper around NewLoader().LoadProcesses.
func LoadProcesses(ctx context.Context, location string, strategy sim.Strategy) ([]sim.Process, error) {
	return NewLoader().LoadProcesses(ctx, location, strategy)
}

// SaveProcesses writes procs as a YAML sequence to location.
func (l *Loader) SaveProcesses(ctx context.Context, location string, procs []sim.Process) error {
	location = url.Normalize(location, file.Scheme)
	data, err := yaml.Marshal(procs)
	if err != nil {
		return fmt.Errorf("encoding processes: %w", err)
	}
	if err := l.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing process file %s: %w", location, err)
	}
	logrus.Debugf("wrote %d processes to %s", len(procs), location)
	return nil
}

// ParseProcesses decodes a YAML or JSON process sequence and validates it for strategy.
func ParseProcesses(data []byte, strategy sim.Strategy) ([]sim.Process, error) {
	var procs []sim.Process
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&procs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing processes: empty document")
		}
		return nil, fmt.Errorf("parsing processes: %w", err)
	}
	if strategy == sim.StrategyCPU {
		for i := range procs {
			procs[i].ID = strconv.Itoa(i + 1)
		}
	}
	if err := sim.ValidateProcesses(procs, strategy); err != nil {
		return nil, err
	}
	return procs, nil
}
