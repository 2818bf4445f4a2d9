package store

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// Report is the record of one headless steam run.
type Report struct {
	Scene      string             `json:"scene"`
	Steam      string             `json:"steam"`
	Seed       int64              `json:"seed"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Ticks      int                `json:"ticks"`
	Timestamp  time.Time          `json:"timestamp"`
	Population []float64          `json:"population"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes r to the file at path.
func ExportJSON(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, r)
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
