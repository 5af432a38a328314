package state

import "restaurant-storefront/internal/domain"

// Tables is the seating plan plus the table chosen for the current session.
// Selected is a value copy kept in step with the matching entry.
type Tables struct {
	Tables   []domain.Table `json:"tables"`
	Selected *domain.Table  `json:"selectedTable"`
}

func (s Tables) Find(id string) (domain.Table, bool) {
	for _, t := range s.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Table{}, false
}

// NumberTaken reports whether a table other than exceptID uses number.
func (s Tables) NumberTaken(number int, exceptID string) bool {
	for _, t := range s.Tables {
		if t.Number == number && t.ID != exceptID {
			return true
		}
	}
	return false
}

func (s Tables) Add(table domain.Table) (Tables, error) {
	if table.Number < 1 {
		return s, domain.ErrInvalidTableNumber
	}
	if table.Capacity < 1 {
		return s, domain.ErrInvalidTableCapacity
	}
	if _, ok := s.Find(table.ID); ok {
		return s, domain.ErrDuplicateTableID
	}
	if s.NumberTaken(table.Number, "") {
		return s, domain.ErrDuplicateTableNumber
	}
	if !table.IsReserved {
		clearReservation(&table)
	} else if table.ReservationName == "" || table.ReservationTime == "" || table.ReservationPhone == "" {
		return s, domain.ErrIncompleteReservation
	}
	s.Tables = append(s.cloneTables(), table)
	return s, nil
}

func (s Tables) Update(id string, patch domain.TablePatch) (Tables, error) {
	if patch.Number != nil {
		if *patch.Number < 1 {
			return s, domain.ErrInvalidTableNumber
		}
		if s.NumberTaken(*patch.Number, id) {
			return s, domain.ErrDuplicateTableNumber
		}
	}
	if patch.Capacity != nil && *patch.Capacity < 1 {
		return s, domain.ErrInvalidTableCapacity
	}
	return s.apply(id, func(t *domain.Table) {
		if patch.Number != nil {
			t.Number = *patch.Number
		}
		if patch.Capacity != nil {
			t.Capacity = *patch.Capacity
		}
	}), nil
}

func (s Tables) Delete(id string) Tables {
	tables := make([]domain.Table, 0, len(s.Tables))
	for _, t := range s.Tables {
		if t.ID != id {
			tables = append(tables, t)
		}
	}
	s.Tables = tables
	if s.Selected != nil && s.Selected.ID == id {
		s.Selected = nil
	}
	return s
}

// Reserve attaches all three reservation fields at once.
func (s Tables) Reserve(id, name, time, phone string) (Tables, error) {
	if name == "" || time == "" || phone == "" {
		return s, domain.ErrIncompleteReservation
	}
	return s.apply(id, func(t *domain.Table) {
		t.IsReserved = true
		t.ReservationName = name
		t.ReservationTime = time
		t.ReservationPhone = phone
	}), nil
}

// Close drops the reservation and all of its fields.
func (s Tables) Close(id string) Tables {
	return s.apply(id, clearReservation)
}

func (s Tables) Select(table *domain.Table) Tables {
	if table == nil {
		s.Selected = nil
		return s
	}
	selected := *table
	s.Selected = &selected
	return s
}

func (s Tables) Clone() Tables {
	s.Tables = s.cloneTables()
	if s.Selected != nil {
		selected := *s.Selected
		s.Selected = &selected
	}
	return s
}

// apply runs fn on the matching table and on the selection copy if it points
// at the same id. Unknown ids leave the state unchanged.
func (s Tables) apply(id string, fn func(*domain.Table)) Tables {
	tables := s.cloneTables()
	for i := range tables {
		if tables[i].ID == id {
			fn(&tables[i])
		}
	}
	s.Tables = tables
	if s.Selected != nil && s.Selected.ID == id {
		selected := *s.Selected
		fn(&selected)
		s.Selected = &selected
	}
	return s
}

func (s Tables) cloneTables() []domain.Table {
	out := make([]domain.Table, len(s.Tables))
	copy(out, s.Tables)
	return out
}

func clearReservation(t *domain.Table) {
	t.IsReserved = false
	t.ReservationName = ""
	t.ReservationTime = ""
	t.ReservationPhone = ""
}
