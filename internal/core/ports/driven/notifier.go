package driven

// Notifier surfaces replay outcomes to the user.
type Notifier interface {
	// Flushed reports that count queued records reached the server.
	Flushed(count int)

	// Failed reports a replay that left the queue untouched.
	Failed(err error)
}
