package models

type TitleKind string

const (
	TitleMovie  TitleKind = "movie"
	TitleSeries TitleKind = "series"
)

// TitleRef identifies exactly one title, either a movie or a series.
// Request payloads and table rows carry two nullable ids; everything above
// the storage boundary works with this resolved form, so the
// movie-XOR-series invariant holds by construction.
type TitleRef struct {
	Kind TitleKind
	ID   int64
}

func MovieRef(id int64) TitleRef {
	return TitleRef{Kind: TitleMovie, ID: id}
}

func SeriesRef(id int64) TitleRef {
	return TitleRef{Kind: TitleSeries, ID: id}
}

// NewTitleRef resolves the two-nullable-columns representation. Both set or
// neither set is rejected with ErrInvalidAssociation.
func NewTitleRef(movieID, seriesID *int64) (TitleRef, error) {
	switch {
	case movieID != nil && seriesID != nil:
		return TitleRef{}, ErrInvalidAssociation
	case movieID != nil:
		return MovieRef(*movieID), nil
	case seriesID != nil:
		return SeriesRef(*seriesID), nil
	default:
		return TitleRef{}, ErrInvalidAssociation
	}
}

// MovieID returns the nullable movie column value for this reference.
func (r TitleRef) MovieID() *int64 {
	if r.Kind == TitleMovie {
		id := r.ID
		return &id
	}
	return nil
}

// SeriesID returns the nullable series column value for this reference.
func (r TitleRef) SeriesID() *int64 {
	if r.Kind == TitleSeries {
		id := r.ID
		return &id
	}
	return nil
}
