package voting

import "github.com/osse101/CatchCup_Go/internal/domain"

// SelectWinner picks the catch with the most votes. Ties go to the lowest
// catch ID so that replays of the same tally always agree. ok is false for
// an empty tally or one where every count is zero.
func SelectWinner(tally domain.Tally) (catchID int64, count int64, ok bool) {
	for id, c := range tally {
		if c <= 0 {
			continue
		}
		if !ok || c > count || (c == count && id < catchID) {
			catchID, count, ok = id, c, true
		}
	}
	return catchID, count, ok
}
