package usecase

// Sort orders accepted in listings.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListInput carries the optional ordering of a listing. An empty SortBy keeps insertion order;
// otherwise results are sorted descending unless Order is "asc".
type ListInput struct {
	SortBy string
	Order  string
}
