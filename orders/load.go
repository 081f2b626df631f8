package orders

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-grid/logging"
)

var dateLayouts = []string{"01/02/2006", "2006-01-02", time.RFC3339}

// Load reads orders from a .csv, .json snapshot or .yaml/.yml file.
func Load(path string) ([]*OrderInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return loadFile(path, ReadCSV)
	case ".yaml", ".yml":
		return loadFile(path, ReadYAML)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv, .json or .yaml)", ext)
	}
}

func loadFile(path string, read func(io.Reader) ([]*OrderInfo, error)) ([]*OrderInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	list, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	logging.Infof("orders: loaded %d orders from %s", len(list), path)
	return list, nil
}

// ReadCSV parses a header row followed by one order per line. Header names
// match column names case-insensitively; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]*OrderInfo, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV has no header row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(row []string, column string) string {
		i, ok := index[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	list := make([]*OrderInfo, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		o := &OrderInfo{
			CustomerID:   field(row, ColCustomerID),
			CustomerName: field(row, ColCustomerName),
			Country:      field(row, ColCountry),
			ShipCity:     field(row, ColShipCity),
		}
		if s := field(row, ColOrderID); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: order id %q: %w", line, s, err)
			}
			o.OrderID = &v
		}
		if s := field(row, ColDateTime); s != "" {
			t, err := parseDate(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			o.Date = &t
		}
		if s := field(row, ColIsChecked); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: is checked %q: %w", line, s, err)
			}
			o.IsChecked = b
		}
		list = append(list, o)
	}
	return list, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// ReadYAML parses a YAML sequence of orders.
func ReadYAML(r io.Reader) ([]*OrderInfo, error) {
	var list []*OrderInfo
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if err == io.EOF {
			return []*OrderInfo{}, nil
		}
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return list, nil
}

const snapshotVersion = 1

type snapshotDTO struct {
	Version int          `json:"version"`
	Orders  []*OrderInfo `json:"orders"`
	Note    string       `json:"note,omitempty"`
}

// SaveJSON writes a versioned snapshot of list.
func SaveJSON(path string, list []*OrderInfo) error {
	dto := snapshotDTO{Version: snapshotVersion, Orders: list}
	if dto.Orders == nil {
		dto.Orders = []*OrderInfo{}
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadJSON reads a snapshot written by SaveJSON.
func LoadJSON(path string) ([]*OrderInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	logging.Infof("orders: loaded %d orders from snapshot %s", len(dto.Orders), path)
	return dto.Orders, nil
}
