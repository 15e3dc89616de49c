package wordlist

// Source is a read-only view of a whole word file. Words loaded from it
// point into its bytes, so it must stay open until they are no longer used.
type Source struct {
	data  []byte
	unmap func() error
}

func (s *Source) Bytes() []byte {
	return s.data
}

// Close releases the mapping. It is safe to call more than once.
func (s *Source) Close() error {
	if s.unmap == nil {
		return nil
	}
	err := s.unmap()
	s.unmap = nil
	s.data = nil
	return err
}
