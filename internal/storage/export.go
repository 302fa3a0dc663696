package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

type ExportData struct {
	ID             string      `json:"id"`
	Sampler        string      `json:"sampler"`
	Target         string      `json:"target"`
	Seed           int64       `json:"seed"`
	Steps          int         `json:"steps"`
	AcceptanceRate float64     `json:"acceptance_rate,omitempty"`
	Chain          [][]float64 `json:"chain"`
}

func exportData(meta *RunMetadata, chain []mcmc.Point) ExportData {
	data := ExportData{
		ID:      meta.ID,
		Sampler: meta.Sampler,
		Target:  meta.Target,
		Seed:    meta.Seed,
		Steps:   meta.Steps,
		Chain:   make([][]float64, len(chain)),
	}
	if meta.HasAcceptance {
		data.AcceptanceRate = meta.AcceptanceRate
	}
	for i, p := range chain {
		data.Chain[i] = []float64{p.X, p.Y}
	}
	return data
}

func ExportJSON(path string, meta *RunMetadata, chain []mcmc.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, chain))
}

func ExportJSONStdout(meta *RunMetadata, chain []mcmc.Point) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, chain))
}
