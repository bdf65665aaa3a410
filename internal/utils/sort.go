package utils

// NormalizeSort validates a caller-supplied sort field against the
// allowed set for a listing. Unknown fields silently fall back to
// created_at and anything other than ASC falls back to DESC, so a
// bogus sort never reaches the query builder.
func NormalizeSort(field, order string, allowed map[string]bool) (string, string) {
	if !allowed[field] {
		field = "created_at"
	}

	if order != "ASC" {
		order = "DESC"
	}

	return field, order
}
