package oneapi

// Page is the envelope every list and lookup endpoint returns.
type Page[T any] struct {
	Docs   []T `json:"docs"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Page   int `json:"page"`
	Pages  int `json:"pages"`
}

// HasMorePages checks if there are more pages to fetch
func (p *Page[T]) HasMorePages() bool {
	return p.Page < p.Pages
}

// Movie represents a movie document
type Movie struct {
	ID                         string  `json:"_id"`
	Name                       string  `json:"name"`
	RuntimeInMinutes           int     `json:"runtimeInMinutes"`
	BudgetInMillions           float64 `json:"budgetInMillions"`
	BoxOfficeRevenueInMillions float64 `json:"boxOfficeRevenueInMillions"`
	AcademyAwardNominations    int     `json:"academyAwardNominations"`
	AcademyAwardWins           int     `json:"academyAwardWins"`
	RottenTomatoesScore        float64 `json:"rottenTomatoesScore"`
}

// Quote represents a movie quote document
type Quote struct {
	ID        string `json:"_id"`
	Dialog    string `json:"dialog"`
	Movie     string `json:"movie"`
	Character string `json:"character"`
}

// DecodePage converts a Result into a typed page.
func DecodePage[T any](r Result) (*Page[T], error) {
	var page Page[T]
	if err := r.Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}
