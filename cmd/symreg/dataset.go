package main

import (
	"compress/gzip"
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cbarrick/cgp/problem"
)

// discoverDatasets walks dir for gzip-compressed, tab-separated dataset
// files (*.tsv.gz), returning their paths in a stable, sorted order.
func discoverDatasets(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tsv.gz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "discoverDatasets: walk %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// loadDataset reads a gzip-compressed tab-separated file into Samples: every
// row's trailing column is the regression target, the rest are inputs.
func loadDataset(path string) ([]problem.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loadDataset: open %s", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loadDataset: gunzip %s", path)
	}
	defer gz.Close()

	r := csv.NewReader(gz)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "loadDataset: parse %s", path)
	}

	samples := make([]problem.Sample, 0, len(records))
	for lineno, rec := range records {
		if len(rec) < 2 {
			continue
		}
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "loadDataset: %s line %d field %d", path, lineno+1, i)
			}
			vals[i] = v
		}
		samples = append(samples, problem.Sample{
			Inputs: vals[:len(vals)-1],
			Target: vals[len(vals)-1],
		})
	}
	return samples, nil
}
