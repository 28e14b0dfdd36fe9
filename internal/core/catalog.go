package core

import (
	"fmt"

	"episodes/internal/models"
)

const DefaultPoster = "/posters/default.svg"

// Catalog is the compiled-in episode table, in broadcast order.
var Catalog = []models.EpisodeMetadata{
	entry(1, "Peter, Peter, Caviar Eater"),
	entry(2, "Holy Crap"),
	entry(3, "Da Boom"),
	entry(4, "Mind Over Murder"),
	entry(5, "A Hero Sits Next Door"),
	entry(6, "The Son Also Draws"),
	entry(7, "Brian: Portrait of a Dog"),
	entry(8, "Peter, Peter, Caviar Eater"),
	entry(9, "Running Mates"),
	entry(10, "A Picture Is Worth 1,000 Bucks"),
}

func entry(n int, title string) models.EpisodeMetadata {
	return models.EpisodeMetadata{
		Number: n,
		Key:    fmt.Sprintf("ep%d", n),
		Title:  title,
		Poster: fmt.Sprintf("/posters/ep%d.jpg", n),
	}
}

// fallbackMetadata is used for assets past the end of the table.
func fallbackMetadata(n int) models.EpisodeMetadata {
	return models.EpisodeMetadata{
		Number: n,
		Title:  fmt.Sprintf("Episode %d", n),
		Poster: DefaultPoster,
	}
}
