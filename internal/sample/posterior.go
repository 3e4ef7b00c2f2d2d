package sample

import "iter"

// Posterior returns the post-warmup draws as a lazy sequence of records.
// Each iteration re-reads the immutable matrix, so the sequence is
// restartable and multiple iterations never share a cursor.
func (c *Chain) Posterior() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		m := c.SampleMatrix(false)
		for i := 0; i < m.Rows(); i++ {
			// Row lengths equal the schema length by construction.
			rec, err := c.schema.Record(m.Row(i))
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}
