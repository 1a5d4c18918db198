package usecase

import (
	"errors"

	"lovewall/services/program/internal/entity"
)

// ErrEventNotFound means the requested event index does not exist.
var ErrEventNotFound = errors.New("event not found")

type ProgramUseCase interface {
	ListEvents() []entity.Event
	GetEvent(id int) (*entity.Event, error)
}

type programUseCase struct {
	events []entity.Event
}

func NewProgramUseCase() ProgramUseCase {
	return &programUseCase{events: weekendProgram()}
}

// ListEvents returns the whole weekend in chronological order.
func (uc *programUseCase) ListEvents() []entity.Event {
	events := make([]entity.Event, len(uc.events))
	copy(events, uc.events)
	return events
}

func (uc *programUseCase) GetEvent(id int) (*entity.Event, error) {
	if id < 0 || id >= len(uc.events) {
		return nil, ErrEventNotFound
	}
	event := uc.events[id]
	return &event, nil
}

// weekendProgram is the fixed celebration schedule. The program is part of
// the deployment, not guest-editable content, so it lives in code rather
// than the database.
func weekendProgram() []entity.Event {
	return []entity.Event{
		{
			ID:       0,
			Title:    "Traditional Wedding",
			Date:     "Friday, April 11, 2025",
			Venue:    "Jacksville Event Center",
			Location: "Uyo, Nigeria",
			MapURL:   "https://maps.google.com/?q=Jacksville+Event+Center+Uyo+Nigeria",
			Schedule: []entity.ScheduleItem{
				{ID: 1, Time: "12:00 PM", Title: "Guest Arrival", Description: "Guests arrive and are seated", Location: "Main Hall"},
				{ID: 2, Time: "12:30 PM", Title: "Traditional Ceremony", Description: "Traditional marriage rituals and customs", Location: "Main Hall"},
				{ID: 3, Time: "2:00 PM", Title: "Cultural Performances", Description: "Traditional dances and performances", Location: "Main Stage"},
				{ID: 4, Time: "3:00 PM", Title: "Feast", Description: "Traditional food and refreshments", Location: "Dining Area"},
				{ID: 5, Time: "5:00 PM", Title: "Closing", Description: "End of traditional ceremony", Location: "Main Hall"},
			},
		},
		{
			ID:       1,
			Title:    "Cocktail Night",
			Date:     "Friday, April 11, 2025",
			Venue:    "Chalis Apartments",
			Location: "Uyo, Nigeria",
			MapURL:   "https://maps.google.com/?q=Chalis+Apartments+Uyo+Nigeria",
			Schedule: []entity.ScheduleItem{
				{ID: 1, Time: "7:00 PM", Title: "Arrival & Welcome Drinks", Description: "Signature cocktails and appetizers", Location: "Lounge"},
				{ID: 2, Time: "7:30 PM", Title: "Social Hour", Description: "Mix and mingle with other guests", Location: "Outdoor Terrace"},
				{ID: 3, Time: "8:30 PM", Title: "Games & Entertainment", Description: "Fun activities for everyone", Location: "Main Area"},
				{ID: 4, Time: "10:00 PM", Title: "Dance Party", Description: "DJ playing all the hits", Location: "Dance Floor"},
				{ID: 5, Time: "12:00 AM", Title: "Event Conclusion", Description: "End of cocktail night", Location: "Main Entrance"},
			},
		},
		{
			ID:       2,
			Title:    "Wedding Ceremony",
			Date:     "Saturday, April 12, 2025",
			Venue:    "Flairmore Event Center",
			Location: "Uyo, Nigeria",
			MapURL:   "https://maps.google.com/?q=Flairmore+Event+Center+Uyo+Nigeria",
			Schedule: []entity.ScheduleItem{
				{ID: 1, Time: "1:00 PM", Title: "Guest Arrival", Description: "Guests arrive and are seated", Location: "Main Hall"},
				{ID: 2, Time: "2:00 PM", Title: "Ceremony", Description: "Wedding ceremony begins", Location: "Event Hall"},
				{ID: 3, Time: "3:00 PM", Title: "Cocktail Hour", Description: "Drinks and appetizers served while wedding party takes photos", Location: "Garden Area"},
				{ID: 4, Time: "4:30 PM", Title: "Reception", Description: "Dinner, speeches, and dancing", Location: "Main Ballroom"},
				{ID: 5, Time: "10:00 PM", Title: "Send Off", Description: "Farewell to the newlyweds", Location: "Front Entrance"},
			},
		},
		{
			ID:       3,
			Title:    "Beach Day",
			Date:     "Sunday, April 13, 2025",
			Venue:    "Ibeno Beach",
			Location: "Ibeno, Nigeria",
			MapURL:   "https://maps.google.com/?q=Ibeno+Beach+Nigeria",
			Schedule: []entity.ScheduleItem{
				{ID: 1, Time: "2:00 PM", Title: "Arrival at Beach", Description: "Meet and greet at the beachfront", Location: "Main Beach Entrance"},
				{ID: 2, Time: "2:30 PM", Title: "Beach Activities", Description: "Games, swimming, and relaxation", Location: "Beach Area"},
				{ID: 3, Time: "4:00 PM", Title: "BBQ & Refreshments", Description: "Food and drinks served", Location: "Beach Pavilion"},
				{ID: 4, Time: "6:00 PM", Title: "Sunset Gathering", Description: "Watch the sunset together", Location: "Beachfront"},
				{ID: 5, Time: "7:00 PM", Title: "Farewell", Description: "End of celebrations", Location: "Beach Entrance"},
			},
		},
	}
}
