// README: Offline demo; scores a canned candidate set and prints the ranking.
package main

import (
	"fmt"

	"rumbo/internal/places"
	"rumbo/internal/recommend"
	"rumbo/internal/types"
)

func main() {
	candidates := []places.Place{
		{
			ID: "prado", Name: "Museo del Prado", Category: "museum",
			Position: types.Point{Lat: 40.4138, Lng: -3.6921},
			Rating:   4.8, PriceLevel: 2,
			Tags: []string{"museum", "tourist_attraction"},
		},
		{
			ID: "retiro", Name: "Parque del Retiro", Category: "park",
			Position: types.Point{Lat: 40.4153, Lng: -3.6845},
			Rating:   4.7, PriceLevel: 0,
			Tags:            []string{"park"},
			WeatherSuitable: []string{"clear", "clouds"},
		},
		{
			ID: "mercado", Name: "Mercado de San Miguel", Category: "restaurant",
			Position: types.Point{Lat: 40.4155, Lng: -3.7089},
			Rating:   4.4, PriceLevel: 3,
			Tags: []string{"restaurant", "food"},
		},
		{
			ID: "kapital", Name: "Teatro Kapital", Category: "night_club",
			Position: types.Point{Lat: 40.4095, Lng: -3.6935},
			Rating:   3.9, PriceLevel: 3,
			Tags: []string{"night_club", "bar"},
		},
	}

	user := recommend.UserContext{
		FavoriteCategories: []string{"museum", "park"},
		FrequentTags:       []string{"tourist_attraction"},
		AveragePriceLevel:  2,
	}
	sig := recommend.Signals{
		Origin:    types.Point{Lat: 40.4168, Lng: -3.7038},
		RadiusKm:  5,
		Weather:   "rain",
		TimeOfDay: recommend.Afternoon,
	}

	ranked := recommend.Rank(candidates, user, sig, recommend.DefaultWeights())

	fmt.Printf("Ranking for a rainy %s near Puerta del Sol:\n\n", sig.TimeOfDay)
	for i, r := range ranked {
		fmt.Printf("%d. %-26s %5.1f  (%.1f km)  %s\n",
			i+1, r.Place.Name, r.Score, r.DistanceKm, r.Reason)
	}
}
