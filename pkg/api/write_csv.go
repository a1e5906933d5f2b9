package api

// WriteCSV writes the scored records to a CSV file, one row per sample, for
// offline inspection or plotting.
type WriteCSV struct {
	Filename string   `yaml:"filename,omitempty" json:"filename,omitempty" doc:"path of the output CSV file"`
	Fields   []string `yaml:"fields,omitempty" json:"fields,omitempty" doc:"ordered record fields written as columns (default: index, value, zscore, anomaly)"`
}
