package seed

import "movie-theater/internal/data/entity"

const portraits = "https://randomuser.me/api/portraits/"

// Movies returns a fresh copy of the movie catalog. None of the seed movies
// carry reviews.
func Movies() []entity.Movie {
	return []entity.Movie{
		{
			ID:          "1",
			Title:       "Interstellar: Beyond Time",
			Poster:      "https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Sci-Fi", "Adventure", "Drama"},
			Language:    "English",
			Duration:    "2h 49m",
			ReleaseDate: "2025-05-15",
			Rating:      4.8,
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival as Earth faces a catastrophic food shortage.",
			Cast: []entity.CastMember{
				{Name: "Matthew McConaughey", Role: "Cooper", Image: portraits + "men/41.jpg"},
				{Name: "Anne Hathaway", Role: "Brand", Image: portraits + "women/28.jpg"},
				{Name: "Jessica Chastain", Role: "Murph", Image: portraits + "women/33.jpg"},
			},
			Director:      "Christopher Nolan",
			DirectorImage: portraits + "men/32.jpg",
		},
		{
			ID:          "2",
			Title:       "The Last Guardian",
			Poster:      "https://images.unsplash.com/photo-1536440136628-849c177e76a1?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Action", "Fantasy", "Adventure"},
			Language:    "English",
			Duration:    "2h 15m",
			ReleaseDate: "2025-06-10",
			Rating:      4.5,
			Description: "A legendary warrior must protect the last of a magical species from those who seek to harness its power for evil.",
			Cast: []entity.CastMember{
				{Name: "Tom Hardy", Role: "Kael", Image: portraits + "men/22.jpg"},
				{Name: "Zendaya", Role: "Aria", Image: portraits + "women/63.jpg"},
				{Name: "Idris Elba", Role: "Commander Vex", Image: portraits + "men/83.jpg"},
			},
			Director:      "Denis Villeneuve",
			DirectorImage: portraits + "men/45.jpg",
		},
		{
			ID:          "3",
			Title:       "Echoes of Tomorrow",
			Poster:      "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Drama", "Mystery", "Thriller"},
			Language:    "English",
			Duration:    "2h 10m",
			ReleaseDate: "2025-04-22",
			Rating:      4.3,
			Description: "A woman discovers she can communicate with her future self, leading to a race against time to prevent a personal tragedy.",
			Cast: []entity.CastMember{
				{Name: "Saoirse Ronan", Role: "Emma Reeves", Image: portraits + "women/44.jpg"},
				{Name: "Cillian Murphy", Role: "Dr. Nathan Hayes", Image: portraits + "men/55.jpg"},
				{Name: "Lupita Nyong'o", Role: "Detective Sarah Chen", Image: portraits + "women/75.jpg"},
			},
			Director:      "Ava DuVernay",
			DirectorImage: portraits + "women/17.jpg",
		},
		{
			ID:          "4",
			Title:       "Quantum Heist",
			Poster:      "https://images.unsplash.com/photo-1478720568477-152d9b164e26?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Action", "Sci-Fi", "Thriller"},
			Language:    "English",
			Duration:    "1h 58m",
			ReleaseDate: "2025-03-18",
			Rating:      4.2,
			Description: "A team of specialized thieves attempt to steal a revolutionary quantum computer, only to discover it holds the key to altering reality itself.",
			Cast: []entity.CastMember{
				{Name: "John David Washington", Role: "Marcus Reed", Image: portraits + "men/67.jpg"},
				{Name: "Florence Pugh", Role: "Dr. Olivia Chen", Image: portraits + "women/12.jpg"},
				{Name: "Oscar Isaac", Role: "Victor Reyes", Image: portraits + "men/29.jpg"},
			},
			Director:      "Ryan Coogler",
			DirectorImage: portraits + "men/18.jpg",
		},
		{
			ID:          "5",
			Title:       "The Silent Woods",
			Poster:      "https://images.unsplash.com/photo-1542204165-65bf26472b9b?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Horror", "Mystery", "Thriller"},
			Language:    "English",
			Duration:    "1h 52m",
			ReleaseDate: "2025-07-05",
			Rating:      4.0,
			Description: "A family's retreat to a remote cabin takes a terrifying turn when they discover the surrounding forest harbors an ancient, malevolent presence.",
			Cast: []entity.CastMember{
				{Name: "Emily Blunt", Role: "Sarah Mitchell", Image: portraits + "women/23.jpg"},
				{Name: "Ethan Hawke", Role: "David Mitchell", Image: portraits + "men/91.jpg"},
				{Name: "Millie Bobby Brown", Role: "Lily Mitchell", Image: portraits + "women/89.jpg"},
			},
			Director:      "Mike Flanagan",
			DirectorImage: portraits + "men/37.jpg",
		},
		{
			ID:          "6",
			Title:       "Harmony's Echo",
			Poster:      "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?q=80&w=600&auto=format&fit=crop",
			Genre:       []string{"Musical", "Drama", "Romance"},
			Language:    "English",
			Duration:    "2h 12m",
			ReleaseDate: "2025-06-28",
			Rating:      4.6,
			Description: "A gifted musician with hearing loss finds love and rediscovers her passion for music through an unexpected relationship with a street performer.",
			Cast: []entity.CastMember{
				{Name: "Zendaya", Role: "Maya Reynolds", Image: portraits + "women/63.jpg"},
				{Name: "Timothée Chalamet", Role: "Leo Winters", Image: portraits + "men/40.jpg"},
				{Name: "Viola Davis", Role: "Grace Reynolds", Image: portraits + "women/53.jpg"},
			},
			Director:      "Damien Chazelle",
			DirectorImage: portraits + "men/66.jpg",
		},
	}
}
