package constants

// NATS Subjects
const (
	// Trip events
	SubjectTripCreated = "trip.created"
	SubjectTripStatus  = "trip.status"

	// Fleet events
	SubjectFleetSeeded = "fleet.seeded"
)

// NATS queue groups
const (
	QueueTripFeed = "dispatch-trip-feed"
)
