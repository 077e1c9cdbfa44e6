package catalogs

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/skymatch/pkg/errors"
)

// Source is one catalog record in a YAML catalog file.
type Source struct {
	RA  float64 `yaml:"ra" json:"ra"`
	Dec float64 `yaml:"dec" json:"dec"`
}

// LoadFile loads a catalog from a file, dispatching on the extension.
// Supported formats:
//   - .yaml/.yml: a list of {ra, dec} records
//   - .csv: two columns (RA, Dec) with an optional header row
func LoadFile(path string) (Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".csv":
		return loadCSV(path)
	default:
		return Catalog{}, errors.NewValidationError("path", path,
			"unsupported catalog format (want .yaml, .yml, or .csv)")
	}
}

// loadYAML loads a catalog from a YAML list of {ra, dec} records.
func loadYAML(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.WrapIO("read", path, err)
	}

	var sources []Source
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return Catalog{}, errors.WrapParse("yaml", path, err)
	}

	ra := make([]float64, len(sources))
	dec := make([]float64, len(sources))
	for i, s := range sources {
		ra[i] = s.RA
		dec[i] = s.Dec
	}
	return New(ra, dec)
}

// loadCSV loads a catalog from a two-column CSV file. A first row whose
// leading field does not parse as a number is treated as a header and
// skipped.
func loadCSV(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // validated per record below
	records, err := reader.ReadAll()
	if err != nil {
		return Catalog{}, errors.WrapParse("csv", path, err)
	}

	var ra, dec []float64
	for i, record := range records {
		if len(record) < 2 {
			return Catalog{}, errors.NewParseError("csv", path,
				"record "+strconv.Itoa(i+1)+" has fewer than 2 fields", nil)
		}

		r, errR := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errR != nil || errD != nil {
			if i == 0 {
				continue // header row
			}
			return Catalog{}, errors.NewParseError("csv", path,
				"record "+strconv.Itoa(i+1)+" is not numeric", nil)
		}
		ra = append(ra, r)
		dec = append(dec, d)
	}
	return New(ra, dec)
}
