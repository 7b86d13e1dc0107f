package plans

// Partition splits the flat catalog into the two display buckets the
// storefront renders, preserving catalog order within each bucket.
func Partition(catalog []Plan) (basic []Plan, advance []Plan) {
	basic = make([]Plan, 0, len(catalog))
	advance = make([]Plan, 0)

	for _, p := range catalog {
		switch PlanTier(&p) {
		case TierAdvance:
			advance = append(advance, p)
		default:
			basic = append(basic, p)
		}
	}
	return basic, advance
}
