package results

// Report joins the peptide and protein-group reports of one search result so
// callers can walk from a group to its peptides and back. Linking is by
// shared protein name.
type Report struct {
	Groups   []ProteinGroup
	Peptides []Peptide

	groupsByProtein   map[string][]int
	peptidesByProtein map[string][]int
}

// NewReport parses both report payloads and builds the cross-index.
func NewReport(proteinsCSV, peptideCSV string) (*Report, error) {
	groups, err := ParseProteinGroups(proteinsCSV)
	if err != nil {
		return nil, err
	}
	peptides, err := ParsePeptides(peptideCSV)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Groups:            groups,
		Peptides:          peptides,
		groupsByProtein:   make(map[string][]int),
		peptidesByProtein: make(map[string][]int),
	}
	for i, g := range groups {
		for _, name := range g.ProteinNames {
			r.groupsByProtein[name] = append(r.groupsByProtein[name], i)
		}
	}
	for i, p := range peptides {
		for _, name := range p.ProteinNames {
			r.peptidesByProtein[name] = append(r.peptidesByProtein[name], i)
		}
	}
	return r, nil
}

// PeptidesForGroup returns the peptides sharing a protein with group i, in
// report order without duplicates.
func (r *Report) PeptidesForGroup(i int) []Peptide {
	if i < 0 || i >= len(r.Groups) {
		return nil
	}
	seen := make(map[int]bool)
	var out []Peptide
	for _, name := range r.Groups[i].ProteinNames {
		for _, pi := range r.peptidesByProtein[name] {
			if !seen[pi] {
				seen[pi] = true
				out = append(out, r.Peptides[pi])
			}
		}
	}
	return out
}

// GroupsForPeptide returns the protein groups sharing a protein with peptide
// i, in report order without duplicates.
func (r *Report) GroupsForPeptide(i int) []ProteinGroup {
	if i < 0 || i >= len(r.Peptides) {
		return nil
	}
	seen := make(map[int]bool)
	var out []ProteinGroup
	for _, name := range r.Peptides[i].ProteinNames {
		for _, gi := range r.groupsByProtein[name] {
			if !seen[gi] {
				seen[gi] = true
				out = append(out, r.Groups[gi])
			}
		}
	}
	return out
}

// Proteins flattens every peptide into per-protein records.
func (r *Report) Proteins() []Protein {
	return ProteinsFromPeptides(r.Peptides)
}
