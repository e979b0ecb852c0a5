package core

// Transformer mutates a Snapshot in place.
type Transformer interface {
	Transform(s *Snapshot) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(s *Snapshot, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(s); err != nil {
			return err
		}
	}
	return nil
}
