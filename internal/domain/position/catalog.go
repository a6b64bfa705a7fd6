package position

// Position is a job opening a candidate's skills can be matched against.
type Position struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

const DefaultCompany = "LlamaIndex"

// Catalog returns the fixed set of selectable positions.
func Catalog() []Position {
	return []Position{
		{Title: "Founding AI Data Engineer", Company: DefaultCompany},
		{Title: "Founding AI Engineer", Company: DefaultCompany},
		{Title: "Founding AI Engineer, Backend", Company: DefaultCompany},
		{Title: "Founding AI Solutions Engineer", Company: DefaultCompany},
	}
}

// Contains reports whether title names a catalog position.
func Contains(title string) bool {
	for _, p := range Catalog() {
		if p.Title == title {
			return true
		}
	}
	return false
}
