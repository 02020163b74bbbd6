package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/pushoff/internal/sim"
)

type ExportData struct {
	Preset      string             `json:"preset"`
	Seed        int64              `json:"seed"`
	Controllers [2]string          `json:"controllers"`
	Winner      string             `json:"winner"`
	Ticks       int                `json:"ticks"`
	TickRate    int                `json:"tick_rate"`
	Frames      []ExportFrame      `json:"frames"`
	Metrics     map[string]float64 `json:"metrics"`
}

type ExportFrame struct {
	Tick      int          `json:"tick"`
	Players   [2][]float64 `json:"players"` // x, y, vx, vy, charge
	Obstacles int          `json:"obstacles"`
	Impact    float64      `json:"impact,omitempty"`
}

func NewExportData(preset string, controllers [2]string, result *sim.Result) ExportData {
	data := ExportData{
		Preset:      preset,
		Seed:        result.Seed,
		Controllers: controllers,
		Winner:      result.Winner.String(),
		Ticks:       result.Ticks,
		TickRate:    sim.TickRate,
		Frames:      make([]ExportFrame, len(result.Frames)),
		Metrics:     result.Metrics,
	}
	for i, fr := range result.Frames {
		ef := ExportFrame{Tick: fr.Tick, Obstacles: fr.Obstacles, Impact: fr.Impact}
		for j, p := range fr.Players {
			ef.Players[j] = []float64{p.X, p.Y, p.VX, p.VY, p.Charge}
		}
		data.Frames[i] = ef
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
