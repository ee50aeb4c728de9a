package domain

// Question is one entry of the intake question catalog. Number defines the
// presentation order and is not necessarily contiguous; questions are
// immutable once created and read-only for the bot.
type Question struct {
	ID     int64
	Number int
	Prompt string
}
