// Package csvio converts CSV input files into the physical model. It is the
// input adapter between the file system and the engine; rows are validated
// through the model constructors and malformed data fails loudly with the
// model's typed errors; rows are never skipped or repaired silently.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/laiopt/laiopt/place"
)

// MemberSeparator splits the member id list inside a single net CSV field.
const MemberSeparator = ";"

// LoadBlocks reads macro blocks from a CSV file with the header
// id,width,height,power,heat.
func LoadBlocks(path string) ([]place.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blocks file: %w", err)
	}
	defer f.Close()
	blocks, err := ReadBlocks(f)
	if err != nil {
		return nil, fmt.Errorf("blocks file %s: %w", path, err)
	}
	return blocks, nil
}

// ReadBlocks parses block rows from r. The first row must be the header.
func ReadBlocks(r io.Reader) ([]place.Block, error) {
	records, err := readAll(r, []string{"id", "width", "height", "power", "heat"})
	if err != nil {
		return nil, err
	}

	blocks := make([]place.Block, 0, len(records))
	for i, rec := range records {
		width, err := parseFloat(rec[1], i, "width")
		if err != nil {
			return nil, err
		}
		height, err := parseFloat(rec[2], i, "height")
		if err != nil {
			return nil, err
		}
		power, err := parseInt(rec[3], i, "power")
		if err != nil {
			return nil, err
		}
		heat, err := parseInt(rec[4], i, "heat")
		if err != nil {
			return nil, err
		}
		b, err := place.NewBlock(strings.TrimSpace(rec[0]), width, height, power, heat)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	logrus.Debugf("loaded %d blocks", len(blocks))
	return blocks, nil
}

// LoadNets reads nets from a CSV file with the header net_id,members,weight.
// The members field lists block ids separated by MemberSeparator.
func LoadNets(path string) ([]place.Net, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nets file: %w", err)
	}
	defer f.Close()
	nets, err := ReadNets(f)
	if err != nil {
		return nil, fmt.Errorf("nets file %s: %w", path, err)
	}
	return nets, nil
}

// ReadNets parses net rows from r. The first row must be the header.
func ReadNets(r io.Reader) ([]place.Net, error) {
	records, err := readAll(r, []string{"net_id", "members", "weight"})
	if err != nil {
		return nil, err
	}

	nets := make([]place.Net, 0, len(records))
	for i, rec := range records {
		weight, err := parseFloat(rec[2], i, "weight")
		if err != nil {
			return nil, err
		}
		raw := strings.Split(rec[1], MemberSeparator)
		members := make([]string, 0, len(raw))
		for _, m := range raw {
			if m = strings.TrimSpace(m); m != "" {
				members = append(members, m)
			}
		}
		n, err := place.NewNet(strings.TrimSpace(rec[0]), members, weight)
		if err != nil {
			return nil, err
		}
		nets = append(nets, n)
	}
	logrus.Debugf("loaded %d nets", len(nets))
	return nets, nil
}

// readAll reads every record, checks the header, and returns the data rows.
func readAll(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: expected header %s", strings.Join(header, ","))
	}
	for i, want := range header {
		if got := strings.TrimSpace(strings.ToLower(records[0][i])); got != want {
			return nil, fmt.Errorf("bad csv header: column %d is %q, want %q", i, records[0][i], want)
		}
	}
	return records[1:], nil
}

func parseFloat(s string, row int, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s %q is not a number", row+1, field, s)
	}
	return v, nil
}

func parseInt(s string, row int, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("row %d: %s %q is not an integer", row+1, field, s)
	}
	return v, nil
}
