package repositories

import "context"

func (repo *TaxRatingDbRepository) Liveness(ctx context.Context, exec Executor) error {
	row := exec.QueryRow(ctx, "SELECT 1")
	var result int
	return row.Scan(&result)
}
