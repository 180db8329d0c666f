package models

import "time"

// displayOffset is the fixed shift applied to stored UTC timestamps for
// display. It is a constant offset, not a timezone conversion.
const displayOffset = 9 * time.Hour

// ToDisplayTime converts a stored UTC timestamp to display time.
func ToDisplayTime(utc time.Time) time.Time {
	return utc.Add(displayOffset)
}

// ToStorageTime converts a display timestamp back to storage (UTC) time.
func ToStorageTime(display time.Time) time.Time {
	return display.Add(-displayOffset)
}

// StorageNow returns the current time as it should be written to the store.
func StorageNow() time.Time {
	return time.Now().UTC()
}
