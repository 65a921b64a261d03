package repositories

// TaxRatingDbRepository groups every query against the service database.
// Usecases depend on narrow interfaces that this type satisfies.
type TaxRatingDbRepository struct{}

func NewTaxRatingDbRepository() *TaxRatingDbRepository {
	return &TaxRatingDbRepository{}
}
