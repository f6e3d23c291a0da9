package places

import "github.com/triplinker/triplinker-api/internal/domain"

// State is the places slice: the working property list plus the detail-view
// selection. Favorited flags live on the properties themselves (they arrive
// in the fetched payload); there is no separate local favorites set.
type State struct {
	Properties []domain.Property
	Selected   *domain.Property
	Loading    bool
	Err        string
}

type event interface{ isPlacesEvent() }

type fetchPending struct{}
type fetchFulfilled struct{ properties []domain.Property }
type fetchRejected struct{ msg string }
type selectPending struct{}
type selectFulfilled struct{ property domain.Property }
type selectRejected struct{ msg string }
type propertyAdded struct{ property domain.Property }
type favoriteToggled struct{ id domain.PropertyID }
type selectionCleared struct{}

func (fetchPending) isPlacesEvent()     {}
func (fetchFulfilled) isPlacesEvent()   {}
func (fetchRejected) isPlacesEvent()    {}
func (selectPending) isPlacesEvent()    {}
func (selectFulfilled) isPlacesEvent()  {}
func (selectRejected) isPlacesEvent()   {}
func (propertyAdded) isPlacesEvent()    {}
func (favoriteToggled) isPlacesEvent()  {}
func (selectionCleared) isPlacesEvent() {}

// reduce is the pure transition function for the places slice.
func reduce(s State, ev event) State {
	switch ev := ev.(type) {
	case fetchPending:
		s.Loading = true
		s.Err = ""
	case fetchFulfilled:
		s.Loading = false
		props := make([]domain.Property, len(ev.properties))
		for i, p := range ev.properties {
			props[i] = cloneProperty(p)
		}
		s.Properties = props
	case fetchRejected:
		s.Loading = false
		s.Err = ev.msg
	case selectPending:
		// Loading only; a prior error is left in place until something
		// overwrites it.
		s.Loading = true
	case selectFulfilled:
		s.Loading = false
		p := cloneProperty(ev.property)
		s.Selected = &p
	case selectRejected:
		// Selected keeps its prior value on a lookup miss.
		s.Loading = false
		s.Err = ev.msg
	case propertyAdded:
		// Prepend: the newest listing goes to the front. No loading/error
		// bracket for this operation.
		props := make([]domain.Property, 0, len(s.Properties)+1)
		props = append(props, cloneProperty(ev.property))
		props = append(props, s.Properties...)
		s.Properties = props
	case favoriteToggled:
		idx := -1
		for i, p := range s.Properties {
			if p.ID == ev.id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s // unknown listing: no state change
		}
		props := make([]domain.Property, len(s.Properties))
		copy(props, s.Properties)
		p := cloneProperty(props[idx])
		p.IsFavorited = !p.IsFavorited
		props[idx] = p
		s.Properties = props
	case selectionCleared:
		s.Selected = nil
	}
	return s
}

func cloneProperty(p domain.Property) domain.Property {
	cp := p
	if p.Images != nil {
		cp.Images = append([]string(nil), p.Images...)
	}
	if p.Amenities != nil {
		cp.Amenities = append([]domain.Amenity(nil), p.Amenities...)
	}
	return cp
}

func cloneState(s State) State {
	if s.Properties != nil {
		props := make([]domain.Property, len(s.Properties))
		for i, p := range s.Properties {
			props[i] = cloneProperty(p)
		}
		s.Properties = props
	}
	if s.Selected != nil {
		p := cloneProperty(*s.Selected)
		s.Selected = &p
	}
	return s
}
