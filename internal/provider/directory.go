package provider

// Company pairs a display name with its ticker symbol.
type Company struct {
	Name   string `json:"companyName"`
	Symbol string `json:"symbol"`
}

// Directory is an immutable, ordered name -> symbol mapping.
// Order is the order in which names were first inserted.
type Directory struct {
	companies []Company
	index     map[string]int // key: company name
}

// NewDirectory builds a directory from entries in order. When a name repeats,
// the later symbol wins and the entry keeps its first position.
func NewDirectory(entries []Company) *Directory {
	d := &Directory{
		companies: make([]Company, 0, len(entries)),
		index:     make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if i, ok := d.index[e.Name]; ok {
			d.companies[i].Symbol = e.Symbol
			continue
		}
		d.index[e.Name] = len(d.companies)
		d.companies = append(d.companies, e)
	}
	return d
}

// Len returns the number of companies.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.companies)
}

// At returns the company at position i.
func (d *Directory) At(i int) (Company, bool) {
	if d == nil || i < 0 || i >= len(d.companies) {
		return Company{}, false
	}
	return d.companies[i], true
}

// Symbol looks up the ticker symbol for a company name.
func (d *Directory) Symbol(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	i, ok := d.index[name]
	if !ok {
		return "", false
	}
	return d.companies[i].Symbol, true
}

// Companies returns a copy of the ordered entries.
func (d *Directory) Companies() []Company {
	if d == nil {
		return nil
	}
	out := make([]Company, len(d.companies))
	copy(out, d.companies)
	return out
}

// Names returns company names in directory order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.companies))
	for i, c := range d.companies {
		out[i] = c.Name
	}
	return out
}
