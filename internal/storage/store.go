package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/pushoff/internal/physics"
	"github.com/san-kum/pushoff/internal/sim"
)

var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrInvalidRunID = errors.New("storage: invalid run id")
)

const (
	metaFile   = "metadata.json"
	framesFile = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Controllers [2]string          `json:"controllers"`
	Winner      string             `json:"winner"`
	Ticks       int                `json:"ticks"`
	Metrics     map[string]float64 `json:"metrics"`
}

var frameHeader = []string{
	"tick",
	"p1_x", "p1_y", "p1_vx", "p1_vy", "p1_charge",
	"p2_x", "p2_y", "p2_vx", "p2_vy", "p2_charge",
	"obstacles", "impact",
}

// Save writes one simulated round to its own directory and returns the run id.
func (s *Store) Save(preset string, controllers [2]string, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%d", preset, result.Seed, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Preset:      preset,
		Timestamp:   now,
		Seed:        result.Seed,
		Controllers: controllers,
		Winner:      result.Winner.String(),
		Ticks:       result.Ticks,
		Metrics:     result.Metrics,
	}
	if err := writeMeta(filepath.Join(runDir, metaFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), result.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

func writeMeta(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeFrames(path string, frames []sim.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(frameHeader); err != nil {
		return err
	}
	for _, fr := range frames {
		row := make([]string, 0, len(frameHeader))
		row = append(row, strconv.Itoa(fr.Tick))
		for _, p := range fr.Players {
			row = append(row, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.VX), formatFloat(p.VY), formatFloat(p.Charge))
		}
		row = append(row, strconv.Itoa(fr.Obstacles), formatFloat(fr.Impact))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// runPath joins a run file under the base dir. IDs are single path
// elements, so nothing outside the runs directory can be named.
func (s *Store) runPath(runID, file string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID {
		return "", fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return filepath.Join(s.baseDir, runID, file), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	path, err := s.runPath(runID, metaFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads back the per-tick trace of a run. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	path, err := s.runPath(runID, framesFile)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		fr, ok := parseFrame(record)
		if !ok {
			continue
		}
		frames = append(frames, fr)
	}
	return frames, nil
}

func parseFrame(record []string) (sim.Frame, bool) {
	var fr sim.Frame
	if len(record) != len(frameHeader) {
		return fr, false
	}
	tick, err := strconv.Atoi(record[0])
	if err != nil {
		return fr, false
	}
	obstacles, err := strconv.Atoi(record[11])
	if err != nil {
		return fr, false
	}

	vals := make([]float64, 0, 11)
	for _, field := range append(record[1:11:11], record[12]) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fr, false
		}
		vals = append(vals, v)
	}

	fr.Tick = tick
	fr.Obstacles = obstacles
	for i := range fr.Players {
		v := vals[i*5 : i*5+5]
		fr.Players[i] = physics.Player{X: v[0], Y: v[1], VX: v[2], VY: v[3], Charge: v[4]}
	}
	fr.Impact = vals[10]
	return fr, true
}
