package blindsearch

// tierRange is the width of the tier roll. Rolling an integer instead of a
// float gives half-percent steps without float comparisons.
const tierRange = 200

// padRange maps a tier roll in [1, tierRange] to the largest pad count for
// that tier. The count is then drawn uniformly from [1, padRange(tier)].
//
//	roll  1       (0.5%)  -> [1, 199]
//	roll  2-5     (2%)    -> [1, 29]
//	roll  6-50    (22.5%) -> [1, 9]
//	roll  51-200  (75%)   -> [1, 4]
func padRange(tier int) int {
	switch {
	case tier <= 1:
		return 199
	case tier <= 5:
		return 29
	case tier <= 50:
		return 9
	default:
		return 4
	}
}

// PaddedFingerprints computes Fingerprints and then adds random decoy
// fingerprints so the set size does not reveal the number of trigrams.
//
// At least one decoy is always drawn, even for empty text, and the result
// never exceeds CapacityCeiling entries. Decoys that collide with existing
// entries are not redrawn.
func PaddedFingerprints(text, partitionID string, salt []byte, rnd RandomSource) (Set, error) {
	set, err := Fingerprints(text, partitionID, salt)
	if err != nil {
		return nil, err
	}
	pad(set, rnd)
	return set, nil
}

// pad inserts up to rnd.PadCount() random values into set, clamped so the set
// stays within CapacityCeiling.
func pad(set Set, rnd RandomSource) {
	n := min(rnd.PadCount(), CapacityCeiling-len(set))
	if n <= 0 {
		return
	}
	for _, v := range rnd.Uint32s(n) {
		set.Add(v)
	}
}
