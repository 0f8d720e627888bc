package domain

// IDSet keeps insertion order and never holds the same id twice.
type IDSet struct {
	ids []string
}

func NewIDSet(ids ...string) IDSet {
	var s IDSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *IDSet) Add(id string) {
	if id == "" || s.Has(id) {
		return
	}
	s.ids = append(s.ids, id)
}

func (s *IDSet) Remove(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return
		}
	}
}

// Replace drops every id and adds ids.
func (s *IDSet) Replace(ids []string) {
	s.ids = nil
	for _, id := range ids {
		s.Add(id)
	}
}

func (s IDSet) Has(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Values returns a copy; callers can't mutate the set through it.
func (s IDSet) Values() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s IDSet) Len() int {
	return len(s.ids)
}

func (s IDSet) clone() IDSet {
	return IDSet{ids: s.Values()}
}
