package fouryousee

const (
	// playerNameLimit bounds player names on create and edit
	playerNameLimit = 50
	// playlistNameLimit bounds playlist names on create
	playlistNameLimit = 50
	// playlistEditNameLimit bounds playlist names on edit
	playlistEditNameLimit = 40

	ellipsis = "..."
)

// truncateName shortens names longer than limit runes to limit-4 runes
// followed by an ellipsis. Shorter names are returned untouched.
func truncateName(name string, limit int) string {
	runes := []rune(name)
	if len(runes) <= limit {
		return name
	}
	return string(runes[:limit-4]) + ellipsis
}
