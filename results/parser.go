// Package results parses the CSV report artifacts of a completed search
// (peptide.csv and proteins.csv) into typed records and cross-indexes them.
package results

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Peptide is one row of the peptide.csv report. List-valued columns are
// semicolon-separated on disk and split here; ProteinNames, Descriptions and
// GeneNames are parallel slices.
type Peptide struct {
	Sequence     string
	ProteinNames []string
	Descriptions []string
	GeneNames    []string
	PSMs         int
	PeptideQ     float64
	BestFilename string
	BestScannr   string
}

// ProteinGroup is one row of the proteins.csv report.
type ProteinGroup struct {
	ProteinNames     []string
	Descriptions     []string
	GeneNames        []string
	PSMs             int
	PeptideSequences []string
	ProteinQ         float64
}

// Protein is a single protein pulled out of a peptide's parallel
// name/description/gene columns.
type Protein struct {
	Name            string
	Description     string
	GeneName        string
	PSMs            int
	PeptideSequence string
}

func splitList(field string) []string {
	parts := strings.Split(field, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParsePeptides parses the text of a peptide.csv artifact. The first row is
// the header.
func ParsePeptides(text string) ([]Peptide, error) {
	rows, err := readRows(text, 8, "peptide.csv")
	if err != nil {
		return nil, err
	}
	peptides := make([]Peptide, 0, len(rows))
	for i, row := range rows {
		psms, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("peptide.csv row %d: psms: %w", i+1, err)
		}
		peptideQ, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("peptide.csv row %d: peptide_q: %w", i+1, err)
		}
		peptides = append(peptides, Peptide{
			Sequence:     strings.TrimSpace(row[0]),
			ProteinNames: splitList(row[1]),
			Descriptions: splitList(row[2]),
			GeneNames:    splitList(row[3]),
			PSMs:         psms,
			PeptideQ:     peptideQ,
			BestFilename: strings.TrimSpace(row[6]),
			BestScannr:   strings.TrimSpace(row[7]),
		})
	}
	return peptides, nil
}

// ParseProteinGroups parses the text of a proteins.csv artifact. The first
// row is the header.
func ParseProteinGroups(text string) ([]ProteinGroup, error) {
	rows, err := readRows(text, 6, "proteins.csv")
	if err != nil {
		return nil, err
	}
	groups := make([]ProteinGroup, 0, len(rows))
	for i, row := range rows {
		psms, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("proteins.csv row %d: psms: %w", i+1, err)
		}
		proteinQ, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("proteins.csv row %d: protein_q: %w", i+1, err)
		}
		groups = append(groups, ProteinGroup{
			ProteinNames:     splitList(row[0]),
			Descriptions:     splitList(row[1]),
			GeneNames:        splitList(row[2]),
			PSMs:             psms,
			PeptideSequences: splitList(row[4]),
			ProteinQ:         proteinQ,
		})
	}
	return groups, nil
}

// ProteinsFromPeptides flattens each peptide's parallel protein columns into
// individual Protein records. A protein appearing under several peptides
// yields one record per peptide.
func ProteinsFromPeptides(peptides []Peptide) []Protein {
	var proteins []Protein
	for _, p := range peptides {
		for i, name := range p.ProteinNames {
			pr := Protein{Name: name, PSMs: p.PSMs, PeptideSequence: p.Sequence}
			if i < len(p.Descriptions) {
				pr.Description = p.Descriptions[i]
			}
			if i < len(p.GeneNames) {
				pr.GeneName = p.GeneNames[i]
			}
			proteins = append(proteins, pr)
		}
	}
	return proteins
}

// readRows parses text as CSV, drops the header, and checks column counts.
func readRows(text string, wantCols int, label string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = wantCols
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", label, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}
