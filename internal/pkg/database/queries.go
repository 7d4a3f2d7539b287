package database

// RefreshServiceRatingQuery recomputes a service's rating aggregate from its reviews.
// $1 is the service ID.
const RefreshServiceRatingQuery = `
	UPDATE services
	SET rating = COALESCE((SELECT AVG(rating)::float8 FROM reviews WHERE service_id = $1), 0),
		review_count = (SELECT COUNT(*) FROM reviews WHERE service_id = $1),
		updated_at = NOW()
	WHERE id = $1
`
